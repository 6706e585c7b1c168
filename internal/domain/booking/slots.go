package booking

import (
	"sort"
	"time"
)

// ===============================
// Grade fixa de horários
// ===============================

// FixedTimeSlots é o universo de slots reserváveis de um dia,
// na ordem do dia. Constante de configuração, nunca derivada.
var FixedTimeSlots = []string{
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
}

const slotLayout = "03:04 PM"
const DateLayout = "2006-01-02"

// SlotIndex devolve a posição do slot na grade do dia.
func SlotIndex(slot string) (int, bool) {
	for i, s := range FixedTimeSlots {
		if s == slot {
			return i, true
		}
	}
	return -1, false
}

// slotMinutes converte o rótulo 12h em minutos desde meia-noite.
// Rótulo ambíguo/malformado é erro do chamador.
func slotMinutes(slot string) (int, bool) {
	t, err := time.Parse(slotLayout, slot)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// ===============================
// Disponibilidade de um dia
// ===============================

type SlotBooking struct {
	Time  string
	Style string
}

type Availability struct {
	BookedTimes      []string `json:"booked_times"`
	UnavailableSlots []string `json:"unavailable_slots"`
}

// ComputeUnavailableSlots calcula os slots indisponíveis de uma data:
// horários reservados, spillover por duração do estilo e, se a data
// for hoje, todos os slots já passados. Spillover além do último slot
// do dia é descartado.
func ComputeUnavailableSlots(date string, bookings []SlotBooking, now time.Time) Availability {
	booked := make(map[int]bool)
	unavailable := make(map[int]bool)

	for _, b := range bookings {
		idx, ok := SlotIndex(b.Time)
		if !ok {
			continue
		}
		booked[idx] = true

		duration := StyleDurationHours(b.Style)
		for i := idx; i < idx+duration && i < len(FixedTimeSlots); i++ {
			unavailable[i] = true
		}
	}

	if date == now.Format(DateLayout) {
		nowMinutes := now.Hour()*60 + now.Minute()
		for i, slot := range FixedTimeSlots {
			if m, ok := slotMinutes(slot); ok && m < nowMinutes {
				unavailable[i] = true
			}
		}
	}

	return Availability{
		BookedTimes:      slotsInDayOrder(booked),
		UnavailableSlots: slotsInDayOrder(unavailable),
	}
}

func slotsInDayOrder(set map[int]bool) []string {
	idxs := make([]int, 0, len(set))
	for i := range set {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)

	slots := make([]string, 0, len(idxs))
	for _, i := range idxs {
		slots = append(slots, FixedTimeSlots[i])
	}
	return slots
}
