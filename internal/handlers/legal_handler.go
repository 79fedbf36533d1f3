package handlers

import (
	"github.com/gofiber/fiber/v2"
)

const legalStyle = `<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>`

type LegalHandler struct {
	appName string
	contact string
}

func NewLegalHandler(appName, contact string) *LegalHandler {
	return &LegalHandler{appName: appName, contact: contact}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - ` + h.appName + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: October 2026</p>
<h2>Information We Collect</h2>
<p>We collect your email address, your school and the reports you choose to submit: a title, a description and an incident type.</p>
<h2>Who Sees Your Reports</h2>
<p>Reports are visible only to you and to the designated staff at your school who review them. Other students never see your reports.</p>
<h2>Confidentiality</h2>
<p>Reports are stored on encrypted servers and are never sold or shared with third parties. Once submitted, a report cannot be edited; staff update its status as they review it.</p>
<h2>Emergencies</h2>
<p>` + h.appName + ` is not an emergency service. If you are in immediate danger, call 911.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact us at ` + h.contact + `</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Terms of Service - ` + h.appName + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Terms of Service</h1>
<p>Last updated: October 2026</p>
<h2>Acceptance</h2>
<p>By using ` + h.appName + `, you agree to these terms.</p>
<h2>Honest Reporting</h2>
<p>Submit reports in good faith. Knowingly false reports may be referred to your school under its conduct policy.</p>
<h2>Review</h2>
<p>Reports are reviewed by school staff. Review times vary and a report status of pending means it has not been reviewed yet.</p>
<h2>Termination</h2>
<p>We may suspend accounts that misuse the reporting service.</p>
<h2>Contact</h2>
<p>For questions, contact us at ` + h.contact + `</p>
</body></html>`)
}
