package events

const (
	ItemsAssignedName   = "items.assigned"
	ItemsUnassignedName = "items.unassigned"
	QuoteCreatedName    = "quote.created"
)

// ItemsAssigned публикуется после успешного пакетного назначения.
type ItemsAssigned struct {
	ItemIDs    []uint64
	AssigneeID uint64
	ActorID    uint64
}

func (e ItemsAssigned) Name() string { return ItemsAssignedName }

// ItemsUnassigned публикуется после успешного пакетного снятия назначения.
type ItemsUnassigned struct {
	ItemIDs []uint64
	ActorID uint64
}

func (e ItemsUnassigned) Name() string { return ItemsUnassignedName }

// QuoteCreated публикуется при формировании коммерческого предложения.
type QuoteCreated struct {
	QuoteID   uint64
	InquiryID uint64
	CreatorID uint64
}

func (e QuoteCreated) Name() string { return QuoteCreatedName }
