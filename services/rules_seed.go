package services

import (
	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/models"
)

// Predefined rule templates grouped by category. Parameterized templates
// carry a single {n}/{date}/{text} placeholder.
var predefinedTemplates = []models.RuleTemplate{
	{Category: "Team Formation", Title: "Team Size Limit",
		TemplateText:  "Teams may have a maximum of {n} members. Teams with more members will not be eligible for prizes.",
		HasParameter:  true, ParameterType: models.ParameterNumber, ParameterLabel: "Maximum team size", DisplayOrder: 1},
	{Category: "Team Formation", Title: "Team Mergers",
		TemplateText:  "Team mergers are allowed and can be performed by the team leader until {date}. The combined team must have a total submission count less than or equal to the maximum allowed.",
		HasParameter:  true, ParameterType: models.ParameterDate, ParameterLabel: "Merger deadline", DisplayOrder: 2},
	{Category: "Team Formation", Title: "One Team Per Participant",
		TemplateText: "Participants may only belong to one team. You cannot switch teams or participate on multiple teams during the competition.",
		DisplayOrder: 3},
	{Category: "Team Formation", Title: "Team Roster Lock",
		TemplateText: "Team members cannot be changed after the competition starts. Make sure your team is finalized before the start date.",
		DisplayOrder: 4},
	{Category: "Submissions", Title: "Daily Submission Limit",
		TemplateText:  "You may submit a maximum of {n} entries per day. Unused submissions do not roll over to the next day.",
		HasParameter:  true, ParameterType: models.ParameterNumber, ParameterLabel: "Submissions per day", DisplayOrder: 10},
	{Category: "Submissions", Title: "Code Submission Required",
		TemplateText: "Submissions must include reproducible source code. Winners may be required to share their solution code with the competition host.",
		DisplayOrder: 11},
	{Category: "Submissions", Title: "External Data Policy",
		TemplateText: "External data is permitted if properly documented and made available to all participants. You must disclose any external data sources used in your solution.",
		DisplayOrder: 12},
	{Category: "Submissions", Title: "Pre-trained Models",
		TemplateText: "Pre-trained models are allowed. You may use publicly available pre-trained models as part of your solution.",
		DisplayOrder: 13},
	{Category: "Submissions", Title: "No Manual Labeling",
		TemplateText: "Hand-labeling of test data is strictly prohibited. Any submission found to use manually labeled test data will be disqualified.",
		DisplayOrder: 14},
	{Category: "Scoring", Title: "Private Leaderboard",
		TemplateText: "Final ranking uses private leaderboard scores calculated on a held-out test set. The public leaderboard is for feedback only.",
		DisplayOrder: 20},
	{Category: "Scoring", Title: "Tie-Breaking",
		TemplateText: "Ties are broken by earliest submission time. If two participants have the same score, the one who submitted earlier wins.",
		DisplayOrder: 21},
	{Category: "Scoring", Title: "Final Submission Selection",
		TemplateText:  "You may select up to {n} submissions for final scoring. If no selection is made, your best public leaderboard submissions will be used.",
		HasParameter:  true, ParameterType: models.ParameterNumber, ParameterLabel: "Number of final submissions", DisplayOrder: 22},
	{Category: "Conduct", Title: "Open Discussion",
		TemplateText: "Share knowledge freely in the discussion forums. Helping others learn is encouraged and contributes to a positive community.",
		DisplayOrder: 30},
	{Category: "Conduct", Title: "Citation Requirements",
		TemplateText: "Cite sources when using external code or techniques. Give proper credit to original authors and provide links to source repositories.",
		DisplayOrder: 31},
	{Category: "Conduct", Title: "No Private Sharing",
		TemplateText: "Private sharing of code or data outside of teams is not permitted. It's okay to share code if made available to all participants on the forums.",
		DisplayOrder: 32},
}

// SeedRuleTemplates inserts the predefined templates on first startup.
// A non-empty table is left untouched.
func SeedRuleTemplates() error {
	var count int64
	if err := database.DB.Model(&models.RuleTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i := range predefinedTemplates {
		tpl := predefinedTemplates[i]
		if err := database.DB.Create(&tpl).Error; err != nil {
			return err
		}
	}
	return nil
}
