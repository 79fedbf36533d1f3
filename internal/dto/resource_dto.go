package dto

import "github.com/ahmetcoskunkizilkaya/studentsafe/internal/resources"

type ResourceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}

type ResourcesResponse struct {
	EmergencyNotice   string                       `json:"emergency_notice"`
	EmergencyContacts []resources.EmergencyContact `json:"emergency_contacts"`
	Categories        []resources.Group            `json:"categories"`
}
