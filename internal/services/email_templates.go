package services

// Outbound email bodies. Each template carries exactly one placeholder that
// the service substitutes before handing the body to the notifier.

const verificationEmailTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome!</h2>
  <p>Thanks for signing up. Please confirm your email address to activate your account.</p>
  <p style="margin: 24px 0;">
    <a href="{url}" style="background: #2d6cdf; color: #fff; padding: 10px 20px; text-decoration: none; border-radius: 4px;">Verify Email</a>
  </p>
  <p>If the button does not work, open this link in your browser:<br>{url}</p>
  <p>If you did not create an account, you can ignore this message.</p>
</body>
</html>`

const passwordResetRequestTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Password reset requested</h2>
  <p>Use this code to reset your password:</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{verificationCode}</p>
  <p>The code is valid for 5 minutes and can be used once.</p>
  <p>If you did not request a reset, you can ignore this message.</p>
</body>
</html>`
