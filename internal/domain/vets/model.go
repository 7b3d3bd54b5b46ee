package vets

import "vet-care-assistant/internal/i18n"

// Vet es un registro del directorio (solo lectura).
// DistanceKm viene cargado con el dato; no se calcula desde la ubicación.
type Vet struct {
	ID          string
	Name        i18n.Text
	Address     i18n.Text
	Phone       string
	DistanceKm  float64
	Rating      float64
	OpenNow     bool
	Emergency   bool // atención 24/7
	Specialties i18n.Texts
}

// Location del usuario. Solo se valida que exista y esté en rango.
type Location struct {
	Lat float64
	Lng float64
}

func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

type Filter struct {
	OpenNow   bool
	Emergency bool
}

func (f Filter) match(v Vet) bool {
	if f.OpenNow && !v.OpenNow {
		return false
	}
	if f.Emergency && !v.Emergency {
		return false
	}
	return true
}
