package dto

import "elextrio-site/internal/domain/contact"

// ContactError is the contact endpoint's own error body.
type ContactError struct {
	Error string `json:"error"`
}

type ContactMessagesResponse struct {
	Messages []contact.BackupEntry `json:"messages"`
}

type ContactEmptyResponse struct {
	Message string `json:"message"`
}
