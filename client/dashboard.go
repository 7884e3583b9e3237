package client

// Dashboard numbers are pure derivations over the already-fetched
// collections; nothing here touches the network and callers recompute on
// every render.

// TodaysBookingCount counts bookings whose date equals today, compared as
// normalized YYYY-MM-DD strings.
func TodaysBookingCount(bookings []Booking, today string) int {
	count := 0
	for _, b := range bookings {
		if b.AppointmentDate == today {
			count++
		}
	}
	return count
}

// Revenue sums totals over paid bookings. A booking whose total doesn't
// parse as a number is skipped entirely, not counted as zero.
func Revenue(bookings []Booking) float64 {
	var sum float64
	for _, b := range bookings {
		if b.PaymentStatus != "paid" {
			continue
		}
		total, err := b.Total.Float64()
		if err != nil {
			continue
		}
		sum += total
	}
	return sum
}

// ActiveServiceCount is simply the collection size; there is no active
// flag filtering despite the name.
func ActiveServiceCount(services []Service) int {
	return len(services)
}
