package order

import "github.com/ricardomaia/credo/internal/order"

type itemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
}

type orderResponse struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id"`
	Status     order.Status   `json:"status"`
	Total      float64        `json:"total"`
	Items      []itemResponse `json:"items"`
}

func toResponse(o *order.Order) orderResponse {
	items := o.Items()

	resp := orderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		Total:      o.Total(),
		Items:      make([]itemResponse, len(items)),
	}

	for i, item := range items {
		resp.Items[i] = itemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Description: item.Description,
		}
	}

	return resp
}

func toResponseList(orders []*order.Order) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toResponse(o)
	}

	return resp
}
