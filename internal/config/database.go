// internal/config/database.go
package config

import (
	"fmt"
)

func (d *DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

// Complete reports whether the selected mail provider has every setting it
// needs. A partially configured provider counts as unconfigured.
func (e *EmailConfig) Complete() bool {
	if e.Provider == "sendgrid" {
		return e.SendGridAPIKey != "" && e.FromEmail != ""
	}
	return e.SMTPHost != "" &&
		e.SMTPPort != "" &&
		e.FromEmail != "" &&
		e.SMTPUsername != "" &&
		e.SMTPPassword != ""
}

func (e *EmailConfig) SMTPAddr() string {
	return fmt.Sprintf("%s:%s", e.SMTPHost, e.SMTPPort)
}

// HasS3 reports whether failed notifications can be archived to S3.
func (a *AWSConfig) HasS3() bool {
	return a.AccessKeyID != "" && a.SecretAccessKey != "" && a.S3Bucket != ""
}
