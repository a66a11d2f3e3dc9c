package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"nursery-api/internal/domain"
)

// recordResource describes one record kind's REST surface: its path segment,
// how a request body becomes a domain record, and how a stored record is
// rendered back. The CRUD handlers themselves are shared across all kinds.
type recordResource struct {
	path   string
	kind   domain.RecordKind
	bind   func(c *gin.Context) (domain.Record, error)
	render func(record domain.Record) any
}

func resource[Req any](path string, kind domain.RecordKind, toDomain func(Req) domain.Record, render func(domain.Record) any) recordResource {
	return recordResource{
		path: path,
		kind: kind,
		bind: func(c *gin.Context) (domain.Record, error) {
			var req Req
			if err := c.ShouldBindJSON(&req); err != nil {
				return domain.Record{}, err
			}
			return toDomain(req), nil
		},
		render: render,
	}
}

func recordResources() []recordResource {
	return []recordResource{
		resource("seedlings-received", domain.KindSeedlingsReceived,
			func(req seedlingReceivedRequest) domain.Record {
				return domain.Record{
					Date:      req.Date,
					Type:      req.Type,
					Supplier:  req.Supplier,
					Price:     req.Price,
					LotNumber: req.LotNumber,
					Quantity:  req.Quantity,
				}
			},
			func(r domain.Record) any {
				return seedlingReceivedResponse{
					recordEnvelope: envelope(r),
					Date:           r.Date,
					Type:           r.Type,
					Supplier:       r.Supplier,
					Price:          r.Price,
					LotNumber:      r.LotNumber,
					Quantity:       r.Quantity,
				}
			},
		),
		resource("delivery-notes", domain.KindDeliveryNotes,
			func(req deliveryNoteRequest) domain.Record {
				return domain.Record{
					Date:             req.Date,
					Type:             req.Type,
					ExpectedQuantity: req.ExpectedQuantity,
					ActualQuantity:   req.ActualQuantity,
				}
			},
			func(r domain.Record) any {
				return deliveryNoteResponse{
					recordEnvelope:   envelope(r),
					Date:             r.Date,
					Type:             r.Type,
					ExpectedQuantity: r.ExpectedQuantity,
					ActualQuantity:   r.ActualQuantity,
				}
			},
		),
		resource("dead-seedlings", domain.KindDeadSeedlings,
			func(req quantityRecordRequest) domain.Record {
				return domain.Record{
					Date:     req.Date,
					Type:     req.Type,
					Quantity: req.Quantity,
				}
			},
			renderQuantityRecord,
		),
		resource("discarded-seedlings", domain.KindDiscardedSeedlings,
			func(req quantityRecordRequest) domain.Record {
				return domain.Record{
					Date:     req.Date,
					Type:     req.Type,
					Quantity: req.Quantity,
				}
			},
			renderQuantityRecord,
		),
		resource("nursery-produced", domain.KindNurseryProduced,
			func(req nurseryProducedRequest) domain.Record {
				return domain.Record{
					Date:              req.Date,
					Type:              req.Type,
					Quantity:          req.Quantity,
					ParentPlant:       req.ParentPlant,
					PropagationMethod: req.PropagationMethod,
				}
			},
			func(r domain.Record) any {
				return nurseryProducedResponse{
					recordEnvelope:    envelope(r),
					Date:              r.Date,
					Type:              r.Type,
					Quantity:          r.Quantity,
					ParentPlant:       r.ParentPlant,
					PropagationMethod: r.PropagationMethod,
				}
			},
		),
		resource("distributed-seedlings", domain.KindDistributedSeedlings,
			func(req distributedSeedlingRequest) domain.Record {
				return domain.Record{
					Date:        req.Date,
					Type:        req.Type,
					Quantity:    req.Quantity,
					Destination: req.Destination,
					Location:    req.Location,
				}
			},
			func(r domain.Record) any {
				return distributedSeedlingResponse{
					recordEnvelope: envelope(r),
					Date:           r.Date,
					Type:           r.Type,
					Quantity:       r.Quantity,
					Destination:    r.Destination,
					Location:       r.Location,
				}
			},
		),
	}
}

// recordEnvelope carries the server-assigned fields common to every kind.
type recordEnvelope struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

func envelope(r domain.Record) recordEnvelope {
	return recordEnvelope{
		ID:        r.ID,
		UserID:    r.Owner,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

type seedlingReceivedRequest struct {
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Supplier  string  `json:"supplier"`
	Price     float64 `json:"price"`
	LotNumber string  `json:"lot_number"`
	Quantity  int     `json:"quantity"`
}

type seedlingReceivedResponse struct {
	recordEnvelope
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Supplier  string  `json:"supplier"`
	Price     float64 `json:"price"`
	LotNumber string  `json:"lot_number"`
	Quantity  int     `json:"quantity"`
}

type deliveryNoteRequest struct {
	Date             string `json:"date"`
	Type             string `json:"type"`
	ExpectedQuantity int    `json:"expected_quantity"`
	ActualQuantity   int    `json:"actual_quantity"`
}

type deliveryNoteResponse struct {
	recordEnvelope
	Date             string `json:"date"`
	Type             string `json:"type"`
	ExpectedQuantity int    `json:"expected_quantity"`
	ActualQuantity   int    `json:"actual_quantity"`
}

// quantityRecordRequest serves dead and discarded seedlings, which share a shape.
type quantityRecordRequest struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type quantityRecordResponse struct {
	recordEnvelope
	Date     string `json:"date"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

func renderQuantityRecord(r domain.Record) any {
	return quantityRecordResponse{
		recordEnvelope: envelope(r),
		Date:           r.Date,
		Type:           r.Type,
		Quantity:       r.Quantity,
	}
}

type nurseryProducedRequest struct {
	Date              string `json:"date"`
	Type              string `json:"type"`
	Quantity          int    `json:"quantity"`
	ParentPlant       string `json:"parent_plant"`
	PropagationMethod string `json:"propagation_method"`
}

type nurseryProducedResponse struct {
	recordEnvelope
	Date              string `json:"date"`
	Type              string `json:"type"`
	Quantity          int    `json:"quantity"`
	ParentPlant       string `json:"parent_plant"`
	PropagationMethod string `json:"propagation_method"`
}

type distributedSeedlingRequest struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Destination string `json:"destination"`
	Location    string `json:"location"`
}

type distributedSeedlingResponse struct {
	recordEnvelope
	Date        string `json:"date"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Destination string `json:"destination"`
	Location    string `json:"location"`
}
