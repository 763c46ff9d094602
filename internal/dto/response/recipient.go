package response

import "marketplace-api/internal/data/entity"

type RecipientResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	MiddleName *string `json:"middle_name"`
	Address    string  `json:"address"`
	ZipCode    string  `json:"zip_code"`
	Phone      string  `json:"phone"`
}

func RecipientToResponse(recipient *entity.Recipient) RecipientResponse {
	return RecipientResponse{
		ID:         recipient.ID.String(),
		UserID:     recipient.UserID.String(),
		FirstName:  recipient.FirstName,
		LastName:   recipient.LastName,
		MiddleName: recipient.MiddleName,
		Address:    recipient.Address,
		ZipCode:    recipient.ZipCode,
		Phone:      recipient.Phone,
	}
}
