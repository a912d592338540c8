package record

// Network is the persisted form of a network. Pointer fields and zero-valued
// UUIDs are "unset": a partial external object transcribes to a partial
// record without clobbering anything it does not mention.
type Network struct {
	UUID            UUID
	TenantID        UUID
	Name            *string
	AdminStateUp    *bool
	Status          *string
	Shared          *bool
	External        *bool
	NetworkType     *string
	PhysicalNetwork *string
	SegmentationID  *int
	QosPolicy       UUID
}
