package inventory

// DiskType is the role a disk slot has within the storage server.
type DiskType string

const (
	DiskTypeParity     DiskType = "Parity"
	DiskTypeData       DiskType = "Data"
	DiskTypeCache      DiskType = "Cache"
	DiskTypeFlash      DiskType = "Flash"
	DiskTypeUnassigned DiskType = "Unassigned"
)

// DiskRecord is one physical disk entry from the inventory source.
//
// An empty ID means the disk slot is not populated; such records never
// enter any monitored group.
type DiskRecord struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type DiskType `json:"type"`

	// SpunDown indicates the disk is in standby. Its temperature reading
	// is meaningless in that state.
	SpunDown bool `json:"spunDown"`

	// Temp is the last temperature reading in degrees Celsius. Only valid
	// if TempKnown is true; the sensor may be absent, stale or unreadable.
	Temp      int  `json:"temp"`
	TempKnown bool `json:"tempKnown"`
}

// SystemStatus is global array state read alongside the disk inventory.
type SystemStatus struct {
	// MdResyncPos is the position of a running parity check or resync,
	// 0 when idle. It is surfaced for reporting but does not influence
	// the PWM decision.
	MdResyncPos int64 `json:"mdResyncPos"`
}

// ParityRunning reports whether a parity check or resync is in progress.
func (s SystemStatus) ParityRunning() bool {
	return s.MdResyncPos > 0
}
