package models

import (
	"strings"
	"time"
)

type ParameterType string

const (
	ParameterNumber ParameterType = "number"
	ParameterDate   ParameterType = "date"
	ParameterText   ParameterType = "text"
)

// RuleTemplate is a predefined rule a sponsor can attach to a competition.
// Parameterized templates carry a single placeholder ({n}, {date} or {text})
// in their text.
type RuleTemplate struct {
	ID             uint32        `gorm:"primarykey" json:"id"`
	Category       string        `gorm:"size:100;not null;index" json:"category"`
	Title          string        `gorm:"size:255;not null" json:"title"`
	TemplateText   string        `gorm:"type:text;not null" json:"template_text"`
	HasParameter   bool          `gorm:"not null;default:false" json:"has_parameter"`
	ParameterType  ParameterType `gorm:"size:50" json:"parameter_type,omitempty"`
	ParameterLabel string        `gorm:"size:100" json:"parameter_label,omitempty"`
	DisplayOrder   int           `gorm:"not null;default:0" json:"display_order"`
	CreatedAt      time.Time     `json:"-"`
	UpdatedAt      time.Time     `json:"-"`
}

func (RuleTemplate) TableName() string {
	return "daggle_rule_template"
}

// CompetitionRule binds either a template (with an optional parameter value)
// or free custom text to a competition.
type CompetitionRule struct {
	ID             uint64        `gorm:"primarykey"`
	CompetitionID  uint32        `gorm:"not null;index"`
	RuleTemplateID *uint32       `gorm:"index"`
	Template       *RuleTemplate `gorm:"foreignKey:RuleTemplateID"`
	IsEnabled      bool          `gorm:"not null;default:true"`
	ParameterValue string        `gorm:"size:255"`
	CustomText     string        `gorm:"type:text"`
	DisplayOrder   int           `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (CompetitionRule) TableName() string {
	return "daggle_competition_rule"
}

// RenderedText substitutes the parameter value into the template placeholder.
// Custom rules return their text verbatim.
func (r *CompetitionRule) RenderedText() string {
	if r.CustomText != "" {
		return r.CustomText
	}
	if r.Template == nil {
		return ""
	}
	text := r.Template.TemplateText
	if r.Template.HasParameter && r.ParameterValue != "" {
		text = strings.ReplaceAll(text, "{n}", r.ParameterValue)
		text = strings.ReplaceAll(text, "{date}", r.ParameterValue)
		text = strings.ReplaceAll(text, "{text}", r.ParameterValue)
	}
	return text
}
