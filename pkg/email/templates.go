package email

import "fmt"

func passwordResetTemplate(resetURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Password Reset Request</h2>
  <p>We received a request to reset your password. Click the button below to choose a new one. This link is valid for a single use.</p>
  <p style="margin: 24px 0;">
    <a href="%s" style="background-color: #2563eb; color: #fff; padding: 12px 24px; text-decoration: none; border-radius: 4px;">Reset Password</a>
  </p>
  <p>If you did not request a password reset, you can safely ignore this email.</p>
</body>
</html>`, resetURL)
}

func passwordChangedTemplate() string {
	return `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Your Password Was Changed</h2>
  <p>The password for your account was just changed. All previous reset tokens are no longer valid.</p>
  <p>If this wasn't you, please contact support immediately.</p>
</body>
</html>`
}
