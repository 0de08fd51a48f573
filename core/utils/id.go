package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateTicketCode returns a short human-shareable code printed on invoices.
func GenerateTicketCode() string {
	code, err := gonanoid.Generate("0123456789ABCDEFGHJKLMNPQRSTUVWXYZ", 10)
	if err != nil {
		return ""
	}
	return "TKT-" + code
}
