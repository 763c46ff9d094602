package response

import "marketplace-api/internal/data/entity"

type MethodResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func PaymentMethodToResponse(method *entity.PaymentMethod) MethodResponse {
	return MethodResponse{
		ID:          method.ID.String(),
		Title:       method.Title,
		Description: method.Description,
	}
}

func DeliveryMethodToResponse(method *entity.DeliveryMethod) MethodResponse {
	return MethodResponse{
		ID:          method.ID.String(),
		Title:       method.Title,
		Description: method.Description,
	}
}
