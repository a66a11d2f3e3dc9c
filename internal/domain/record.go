package domain

import "time"

type RecordKind string

const (
	KindSeedlingsReceived    RecordKind = "seedlings_received"
	KindDeliveryNotes        RecordKind = "delivery_notes"
	KindDeadSeedlings        RecordKind = "dead_seedlings"
	KindDiscardedSeedlings   RecordKind = "discarded_seedlings"
	KindNurseryProduced      RecordKind = "nursery_produced"
	KindDistributedSeedlings RecordKind = "distributed_seedlings"
)

// Record is an inventory event tracked for one owner. All six kinds share
// one shape; kind-specific fields are zero for kinds that do not use them.
type Record struct {
	ID       string
	Kind     RecordKind
	Owner    string
	Date     string
	Type     string
	Quantity int

	// seedlings received
	Supplier  string
	Price     float64
	LotNumber string

	// delivery notes
	ExpectedQuantity int
	ActualQuantity   int

	// nursery produced
	ParentPlant       string
	PropagationMethod string

	// distributed seedlings
	Destination string
	Location    string

	CreatedAt time.Time
}
