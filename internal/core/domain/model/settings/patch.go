package settings

// Patch is a partial update; nil fields are left as they are.
type Patch struct {
	AutoAcceptOrders     *bool
	ShowTimer            *bool
	WarningTimeMinutes   *int
	CriticalTimeMinutes  *int
	ItemsPerPage         *int
	AutoRefreshSeconds   *int
	SoundEnabled         *bool
	SoundOnNewOrder      *bool
	SoundOnRush          *bool
	AutoBumpEnabled      *bool
	AutoBumpDelaySeconds *int
	ColorCodingEnabled   *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

func (p Patch) applyTo(v *Values) {
	setBool(&v.AutoAcceptOrders, p.AutoAcceptOrders)
	setBool(&v.ShowTimer, p.ShowTimer)
	setInt(&v.WarningTimeMinutes, p.WarningTimeMinutes)
	setInt(&v.CriticalTimeMinutes, p.CriticalTimeMinutes)
	setInt(&v.ItemsPerPage, p.ItemsPerPage)
	setInt(&v.AutoRefreshSeconds, p.AutoRefreshSeconds)
	setBool(&v.SoundEnabled, p.SoundEnabled)
	setBool(&v.SoundOnNewOrder, p.SoundOnNewOrder)
	setBool(&v.SoundOnRush, p.SoundOnRush)
	setBool(&v.AutoBumpEnabled, p.AutoBumpEnabled)
	setInt(&v.AutoBumpDelaySeconds, p.AutoBumpDelaySeconds)
	setBool(&v.ColorCodingEnabled, p.ColorCodingEnabled)
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
