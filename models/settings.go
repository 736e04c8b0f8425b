package models

// Settings is the venue's singleton pricing document. All rates are per
// child.
type Settings struct {
	ID                 string  `bson:"id" json:"id,omitempty"`
	FirstHourRate      float64 `bson:"firstHourRate" json:"firstHourRate"`
	AdditionalHourRate float64 `bson:"additionalHourRate" json:"additionalHourRate"`
	FullAfternoonRate  float64 `bson:"fullAfternoonRate" json:"fullAfternoonRate"`
	LogoURL            string  `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
}
