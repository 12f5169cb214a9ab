package types

// SkillCounts summarizes the skill sets behind a skills-match ratio.
type SkillCounts struct {
	CV      int `json:"cv"`
	Job     int `json:"job"`
	Matched int `json:"matched"`
}

// ScoreResult is the composite match score with its explainable breakdown.
// All score fields are percentages in [0,100], rounded to 2 decimal places.
// A ScoreResult is produced fresh per match request and owned by the caller.
type ScoreResult struct {
	FinalScore           float64                  `json:"final_score"`
	OverallSimilarity    float64                  `json:"overall_similarity"`
	SkillsMatch          float64                  `json:"skills_match"`
	ExperienceMatch      float64                  `json:"experience_match"`
	EducationMatch       float64                  `json:"education_match"`
	PerSectionSimilarity map[SectionLabel]float64 `json:"section_similarities"`
	MatchedSkills        []string                 `json:"matched_skills"`
	MissingSkills        []string                 `json:"missing_skills"`
	SkillCounts          SkillCounts              `json:"skill_counts"`
}

// MatchResult is the full report returned to callers: the score breakdown,
// its interpretation label, and the feature sets extracted from both documents.
type MatchResult struct {
	Score          *ScoreResult `json:"score"`
	Interpretation string       `json:"interpretation"`
	CVFeatures     *FeatureSet  `json:"cv_features"`
	JobFeatures    *FeatureSet  `json:"job_features"`
}
