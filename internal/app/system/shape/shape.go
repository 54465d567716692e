// Package shape checks a content dataset before it is written.
//
// Field rules live in `validate` struct tags on the models and are run
// with go-playground/validator. Cross-record rules (unique keys, date
// ranges) are errors; references between collections are soft and only
// produce warnings, because the source data does not enforce them.
package shape

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/stratatour/internal/app/store/content"
	"github.com/dalemusser/stratatour/internal/domain/models"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails for an empty tag or nil func.
		_ = v.RegisterValidation("culture_category", func(fl validator.FieldLevel) bool {
			return models.IsValidCultureCategory(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Struct validates a single record against its struct tags.
func Struct(v any) error {
	return getValidator().Struct(v)
}

// Report collects the problems found in a dataset.
type Report struct {
	Errors   []string
	Warnings []string
}

// Err returns nil when the report has no errors, or one error listing them.
func (r Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return errors.New("invalid content: " + strings.Join(r.Errors, "; "))
}

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// record validates v and files each failing field under label.
func (r *Report) record(label string, v any) {
	err := Struct(v)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		r.errorf("%s: %v", label, err)
		return
	}
	for _, fe := range verrs {
		r.errorf("%s: %s failed %q", label, fe.Namespace(), fe.Tag())
	}
}

// Check validates every record in ds and the relations between them.
func Check(ds *content.Dataset) Report {
	var r Report

	stateCodes := make(map[string]bool, len(ds.States))
	stateSlugs := make(map[string]bool, len(ds.States))
	for _, s := range ds.States {
		r.record("state "+s.Code, s)
		if stateCodes[s.Code] {
			r.errorf("state code %q is not unique", s.Code)
		}
		if stateSlugs[s.Slug] {
			r.errorf("state slug %q is not unique", s.Slug)
		}
		stateCodes[s.Code] = true
		stateSlugs[s.Slug] = true
	}

	districtIDs := make(map[string]bool, len(ds.Districts))
	districtSlugs := make(map[string]bool, len(ds.Districts))
	for _, d := range ds.Districts {
		r.record("district "+d.ID, d)
		if districtIDs[d.ID] {
			r.errorf("district id %q is not unique", d.ID)
		}
		if districtSlugs[d.Slug] {
			r.errorf("district slug %q is not unique", d.Slug)
		}
		districtIDs[d.ID] = true
		districtSlugs[d.Slug] = true
		if !stateCodes[d.StateID] {
			r.warnf("district %s references unknown state %q", d.ID, d.StateID)
		}
	}

	placeIDs := make(map[string]bool, len(ds.Places))
	for _, p := range ds.Places {
		r.record("place "+p.ID, p)
		if placeIDs[p.ID] {
			r.errorf("place id %q is not unique", p.ID)
		}
		placeIDs[p.ID] = true
		if p.DistrictID != "" && !districtIDs[p.DistrictID] {
			r.warnf("place %s references unknown district %q", p.ID, p.DistrictID)
		}
	}

	homestayIDs := make(map[string]bool, len(ds.Homestays))
	for _, h := range ds.Homestays {
		r.record("homestay "+h.ID, h)
		if homestayIDs[h.ID] {
			r.errorf("homestay id %q is not unique", h.ID)
		}
		homestayIDs[h.ID] = true
		if !placeIDs[h.PlaceID] {
			r.warnf("homestay %s references unknown place %q", h.ID, h.PlaceID)
		}
	}
	for _, p := range ds.Places {
		for _, hid := range p.HomestayIDs {
			if !homestayIDs[hid] {
				r.warnf("place %s lists unknown homestay %q", p.ID, hid)
			}
		}
	}

	festivalIDs := make(map[string]bool, len(ds.Festivals))
	for _, f := range ds.Festivals {
		r.record("festival "+f.ID, f)
		if festivalIDs[f.ID] {
			r.errorf("festival id %q is not unique", f.ID)
		}
		festivalIDs[f.ID] = true
		if !stateCodes[f.StateID] {
			r.warnf("festival %s references unknown state %q", f.ID, f.StateID)
		}
		if f.DistrictID != "" && !districtIDs[f.DistrictID] {
			r.warnf("festival %s references unknown district %q", f.ID, f.DistrictID)
		}
		checkDates(&r, f)
	}

	cultureIDs := make(map[string]bool, len(ds.Culture))
	linked := make(map[string]string)
	for _, c := range ds.Culture {
		r.record("culture "+c.ID, c)
		if cultureIDs[c.ID] {
			r.errorf("culture id %q is not unique", c.ID)
		}
		cultureIDs[c.ID] = true
		if c.StateID != nil && !stateCodes[*c.StateID] {
			r.warnf("culture %s references unknown state %q", c.ID, *c.StateID)
		}
		if c.RelatedFestivalID == "" {
			continue
		}
		if !festivalIDs[c.RelatedFestivalID] {
			r.warnf("culture %s links unknown festival %q", c.ID, c.RelatedFestivalID)
		}
		if other, dup := linked[c.RelatedFestivalID]; dup {
			r.errorf("festival %q is linked from both %s and %s", c.RelatedFestivalID, other, c.ID)
		}
		linked[c.RelatedFestivalID] = c.ID
	}

	for _, p := range ds.Products {
		r.record("product "+p.ID, p)
	}
	for _, g := range ds.TravelGuides {
		r.record("guide "+g.ID, g)
	}

	return r
}

func checkDates(r *Report, f models.Festival) {
	start, err1 := time.Parse(time.DateOnly, f.StartDate)
	end, err2 := time.Parse(time.DateOnly, f.EndDate)
	if err1 != nil || err2 != nil {
		// Reported by the datetime tag.
		return
	}
	if end.Before(start) {
		r.errorf("festival %s ends (%s) before it starts (%s)", f.ID, f.EndDate, f.StartDate)
	}
}
