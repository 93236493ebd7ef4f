package handlers

// verificationSuccessTemplate is the page served after a confirmation link
// is followed; {url} points back to the client application.
const verificationSuccessTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #333; text-align: center; padding-top: 48px;">
  <h2>Email confirmed</h2>
  <p>Your account is now active.</p>
  <p><a href="{url}">Back to the application</a></p>
</body>
</html>`
