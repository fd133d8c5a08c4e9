package register

import (
	"encoding/json"
	"fmt"
)

// draft is the persisted subset of the form. Passwords are deliberately
// absent so they never touch the store.
type draft struct {
	IDNumber      string `json:"idNumber,omitempty"`
	Name          string `json:"name,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	Email         string `json:"email,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	TermsAccepted bool   `json:"termsAccepted,omitempty"`
}

func (f *Form) draft() draft {
	return draft{
		IDNumber:      f.IDNumber,
		Name:          f.Name,
		LastName:      f.LastName,
		DateOfBirth:   f.DateOfBirth,
		Email:         f.Email,
		PhoneNumber:   f.PhoneNumber,
		TermsAccepted: f.TermsAccepted,
	}
}

// apply copies the persisted fields into the form, leaving passwords empty.
func (d draft) apply(f *Form) {
	f.IDNumber = d.IDNumber
	f.Name = d.Name
	f.LastName = d.LastName
	f.DateOfBirth = d.DateOfBirth
	f.Email = d.Email
	f.PhoneNumber = d.PhoneNumber
	f.TermsAccepted = d.TermsAccepted
}

func encodeDraft(f *Form) (string, error) {
	data, err := json.Marshal(f.draft())
	if err != nil {
		return "", fmt.Errorf("failed to encode form draft: %w", err)
	}

	return string(data), nil
}

func decodeDraft(raw string) (draft, error) {
	var d draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return draft{}, fmt.Errorf("failed to decode form draft: %w", err)
	}

	return d, nil
}
