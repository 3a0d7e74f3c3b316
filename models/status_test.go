package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrollmentStatusTransitions(t *testing.T) {
	all := []EnrollmentStatus{EnrollmentPending, EnrollmentContacted, EnrollmentEnrolled, EnrollmentRejected}

	// Admins correct triage mistakes in place, so every direction is open,
	// including rejected back to enrolled.
	for _, from := range all {
		for _, to := range all {
			assert.True(t, from.CanTransition(to), "%s -> %s", from, to)
		}
	}

	assert.False(t, EnrollmentPending.CanTransition("archived"))
	assert.False(t, EnrollmentStatus("bogus").Valid())
}

func TestApplicationStatusTransitions(t *testing.T) {
	assert.True(t, ApplicationRejected.CanTransition(ApplicationAccepted))
	assert.True(t, ApplicationAccepted.CanTransition(ApplicationPending))
	assert.False(t, ApplicationPending.CanTransition("withdrawn"))
}

func TestContactStatusTransitions(t *testing.T) {
	assert.True(t, ContactCompleted.CanTransition(ContactNew))
	assert.False(t, ContactNew.CanTransition("spam"))
}

func TestCourseLevelValid(t *testing.T) {
	assert.True(t, LevelUpperIntermediate.Valid())
	assert.False(t, CourseLevel("fluent").Valid())
}

func TestCourseFinalPrice(t *testing.T) {
	discount := 80.0
	course := Course{Price: 100, DiscountPrice: &discount}
	assert.True(t, course.HasDiscount())
	assert.Equal(t, 80.0, course.FinalPrice())

	higher := 120.0
	course.DiscountPrice = &higher
	assert.False(t, course.HasDiscount())
	assert.Equal(t, 100.0, course.FinalPrice())

	course.DiscountPrice = nil
	assert.Equal(t, 100.0, course.FinalPrice())
}
