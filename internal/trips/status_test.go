package trips

import (
	"testing"

	"recycling-backend/internal/models"
)

func TestNextTripStatusWalksFullSequence(t *testing.T) {
	status := models.TripStatusPending
	visited := []models.TripStatus{status}

	for {
		next, ok := nextTripStatus(status)
		if !ok {
			break
		}
		status = next
		visited = append(visited, status)

		if len(visited) > len(models.TripStatusSequence) {
			t.Fatalf("sequence did not terminate, visited %d statuses", len(visited))
		}
	}

	if len(visited) != len(models.TripStatusSequence) {
		t.Fatalf("expected %d statuses, visited %d", len(models.TripStatusSequence), len(visited))
	}
	for i, s := range visited {
		if s != models.TripStatusSequence[i] {
			t.Errorf("step %d: got %s, want %s", i, s, models.TripStatusSequence[i])
		}
	}
}

func TestNextTripStatusStopsAtCompleted(t *testing.T) {
	next, ok := nextTripStatus(models.TripStatusCompleted)
	if ok {
		t.Fatalf("COMPLETED should have no next status, got %s", next)
	}
	if next != models.TripStatusCompleted {
		t.Errorf("expected COMPLETED back, got %s", next)
	}
}

func TestNextTripStatusUnknownStatus(t *testing.T) {
	next, ok := nextTripStatus(models.TripStatus("CANCELLED"))
	if ok {
		t.Fatalf("unknown status should not advance, got %s", next)
	}
}

func TestIsValidTripStatus(t *testing.T) {
	for _, s := range models.TripStatusSequence {
		if !isValidTripStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if isValidTripStatus(models.TripStatus("pending")) {
		t.Error("status values are case sensitive, lowercase should be invalid")
	}
	if isValidTripStatus(models.TripStatus("")) {
		t.Error("empty status should be invalid")
	}
}
