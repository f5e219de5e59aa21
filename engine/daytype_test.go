package engine_test

import (
	"testing"

	"github.com/callsheet/crewpay/engine"
)

func TestDayType_LunchDeduction(t *testing.T) {
	assertDecimal(t, d(1), engine.DayStandard.LunchDeduction(), "SWD")
	assertDecimal(t, d(0.5), engine.DayShortContinuous.LunchDeduction(), "SCWD")
	assertDecimal(t, d(0), engine.DayContinuous.LunchDeduction(), "CWD")
}

func TestDayType_OTThreshold(t *testing.T) {
	// GIVEN: baseDayHours = 10
	// THEN: SWD -> 10, SCWD -> 9.5, CWD -> 9
	base := d(10)
	assertDecimal(t, d(10), engine.DayStandard.OTThreshold(base), "SWD")
	assertDecimal(t, d(9.5), engine.DayShortContinuous.OTThreshold(base), "SCWD")
	assertDecimal(t, d(9), engine.DayContinuous.OTThreshold(base), "CWD")
}

func TestDayType_UnknownTagDefaultsToStandard(t *testing.T) {
	for _, tag := range []engine.DayType{"", "Short Continuous", "swd", "CONTINUOUS"} {
		if tag.Normalize() != engine.DayStandard {
			t.Errorf("Normalize(%q): expected SWD, got %s", tag, tag.Normalize())
		}
	}
	assertDecimal(t, d(1), engine.DayType("???").LunchDeduction(), "unknown lunch")
	assertDecimal(t, d(11), engine.DayType("???").OTThreshold(d(11)), "unknown threshold")
}

func TestDayType_HasFixedLunch(t *testing.T) {
	if !engine.DayStandard.HasFixedLunch() || !engine.DayShortContinuous.HasFixedLunch() {
		t.Error("SWD and SCWD have a fixed lunch break")
	}
	if engine.DayContinuous.HasFixedLunch() {
		t.Error("CWD has a working lunch, nothing to break")
	}
}
