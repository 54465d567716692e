package cmscontentstore

import "github.com/dalemusser/stratatour/internal/domain/models"

// ApplyToState copies every non-empty section of ec onto st.
func ApplyToState(st *models.State, ec models.EntityContent) {
	if ec.SharedStory != nil {
		st.SharedStory = ec.SharedStory
	}
	if ec.CulturalThreads != nil {
		st.CulturalThreads = ec.CulturalThreads
	}
	if ec.CollageImages != nil {
		st.CollageImages = ec.CollageImages
	}
	if ec.DefiningThemes != nil {
		st.DefiningThemes = ec.DefiningThemes
	}
}

// ApplyToDistrict copies the district-editable sections of ec onto d.
func ApplyToDistrict(d *models.District, ec models.EntityContent) {
	if ec.DefiningThemes != nil {
		d.DefiningThemes = ec.DefiningThemes
	}
}
