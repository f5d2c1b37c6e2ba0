// Package kv implements the stage store on top of a whole-value key-value
// backing. Each stage is one key holding the JSON-encoded list of its order
// records; every mutation reads the whole list, edits it in memory, and
// writes it back.
package kv

import (
	"time"

	"pizzeria/internal/core/domain/model/cart"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// orderDTO is the JSON shape of one order record inside a stage list.
// Money amounts travel as decimal strings and timestamps as RFC 3339.
type orderDTO struct {
	ID           string      `json:"id"`
	Items        []itemDTO   `json:"items"`
	DeliveryMode string      `json:"deliveryMode"`
	TableNumber  int         `json:"tableNumber,omitempty"`
	Address      *addressDTO `json:"address,omitempty"`
	CreatedAt    string      `json:"createdAt"`
	ReadyAt      *string     `json:"readyAt,omitempty"`
}

type itemDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	ImageRef  string `json:"imageRef,omitempty"`
}

type addressDTO struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement,omitempty"`
}

// fromDomain converts an order aggregate to its stored representation.
// The stage is not part of the record: it is implied by the key the list
// lives under. The total is not stored either, it is recomputed on restore.
func fromDomain(aggregate *order.Order) orderDTO {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			ProductID: item.ProductID().String(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().String(),
			Quantity:  item.Quantity(),
			ImageRef:  item.ImageRef(),
		})
	}

	var address *addressDTO
	if a := aggregate.Address(); a != nil {
		address = &addressDTO{
			Street:       a.Street(),
			Number:       a.Number(),
			Neighborhood: a.Neighborhood(),
			Complement:   a.Complement(),
		}
	}

	var readyAt *string
	if t := aggregate.ReadyAt(); t != nil {
		formatted := t.Format(time.RFC3339Nano)
		readyAt = &formatted
	}

	return orderDTO{
		ID:           aggregate.ID().String(),
		Items:        items,
		DeliveryMode: aggregate.DeliveryMode().String(),
		TableNumber:  aggregate.TableNumber(),
		Address:      address,
		CreatedAt:    aggregate.CreatedAt().Format(time.RFC3339Nano),
		ReadyAt:      readyAt,
	}
}

// toDomain reconstructs an order aggregate from its stored representation.
// The stage comes from the key the record was read under.
func toDomain(dto orderDTO, stage order.Stage) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromString(itemDTO.ProductID)
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoneyFromString(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := cart.NewItem(productID, itemDTO.Name, unitPrice, itemDTO.Quantity, itemDTO.ImageRef)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	mode, err := order.DeliveryModeFromString(dto.DeliveryMode)
	if err != nil {
		return nil, err
	}

	var address *order.Address
	if dto.Address != nil {
		a, addrErr := order.NewAddress(
			dto.Address.Street,
			dto.Address.Number,
			dto.Address.Neighborhood,
			dto.Address.Complement,
		)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &a
	}

	createdAt, err := time.Parse(time.RFC3339Nano, dto.CreatedAt)
	if err != nil {
		return nil, err
	}

	var readyAt *time.Time
	if dto.ReadyAt != nil {
		t, readyErr := time.Parse(time.RFC3339Nano, *dto.ReadyAt)
		if readyErr != nil {
			return nil, readyErr
		}
		readyAt = &t
	}

	return order.RestoreOrder(id, items, mode, dto.TableNumber, address, createdAt, readyAt, stage)
}
