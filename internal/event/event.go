package event

import "github.com/beyondborder/backend/internal/model"

// Event names. Listeners subscribe by name; emitters construct the typed
// event carrying the just-created row.
const (
	ContactCreatedName    = "contact:created"
	ConsultantCreatedName = "consultant:created"
	CommunityCreatedName  = "community:created"
)

// Event is the closed set of domain events carried by the bus.
type Event interface {
	Name() string
}

type ContactCreated struct {
	Contact model.Contact
}

func (ContactCreated) Name() string { return ContactCreatedName }

type ConsultantCreated struct {
	Request model.ConsultantRequest
}

func (ConsultantCreated) Name() string { return ConsultantCreatedName }

type CommunityCreated struct {
	Member model.CommunityMember
}

func (CommunityCreated) Name() string { return CommunityCreatedName }
