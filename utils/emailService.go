package utils

import (
	"codeeasy/config"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		fmt.Println("Email sender not configured, skipping:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Code Easy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper matching the institute's site branding
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #B91C1C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F2937; line-height: 1.6; }
			.content h2 { color: #B91C1C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #FEF2F2; padding: 15px; border-radius: 4px; border-left: 4px solid #B91C1C; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CODE EASY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Code Easy. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. New review awaiting moderation
func SendReviewNotificationEmail(studentName string, rating int, comment string) {
	notify := config.AppConfig.NotifyEmail
	if notify == "" {
		return
	}

	subject := "New review awaiting moderation"
	body := fmt.Sprintf(`
		<p>A new review just came in and is waiting for approval.</p>
		<div class="info-box">
			<strong>%s</strong> — %d/5<br>
			%s
		</div>
		<p>Open the admin dashboard to approve or reject it.</p>
	`, studentName, rating, comment)

	SendEmail([]string{notify}, subject, getEmailTemplate("New Review Submitted", body))
}

// 2. Contact form enquiry
func SendContactNotificationEmail(name, email, course, message string) {
	notify := config.AppConfig.NotifyEmail
	if notify == "" {
		return
	}

	subject := "New enquiry from the website"
	courseLine := ""
	if course != "" {
		courseLine = fmt.Sprintf("<p>Interested in: <strong>%s</strong></p>", course)
	}
	body := fmt.Sprintf(`
		<p><strong>%s</strong> (%s) sent a message through the contact form.</p>
		%s
		<div class="info-box">%s</div>
	`, name, email, courseLine, message)

	SendEmail([]string{notify}, subject, getEmailTemplate("New Enquiry", body))
}

// 3. Daily moderation digest
func SendModerationDigestEmail(pendingCount int, todayCount int64) {
	notify := config.AppConfig.NotifyEmail
	if notify == "" {
		return
	}

	subject := fmt.Sprintf("Moderation digest: %d review(s) pending", pendingCount)
	body := fmt.Sprintf(`
		<p>There are <strong>%d</strong> review(s) waiting for moderation.</p>
		<p>%d review(s) were submitted since midnight.</p>
		<p>Open the admin dashboard to clear the queue.</p>
	`, pendingCount, todayCount)

	SendEmail([]string{notify}, subject, getEmailTemplate("Daily Moderation Digest", body))
}
