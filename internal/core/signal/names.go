package signal

// Text category signal names
const (
	AIDetection            = "aiDetection"
	TemplateMatching       = "templateMatching"
	RepetitionPattern      = "repetitionPattern"
	SentimentConsistency   = "sentimentConsistency"
	VocabularyDistribution = "vocabularyDistribution"
)

// Account category signal names
const (
	AccountAge          = "accountAge"
	PostingFrequency    = "postingFrequency"
	ReviewDiversity     = "reviewDiversity"
	ProfileCompleteness = "profileCompleteness"
	NetworkSignals      = "networkSignals"
	VerifiedPurchase    = "verifiedPurchase"
)

// Behavioral category signal names
const (
	CoordinatedLanguage    = "coordinatedLanguage"
	TimingCluster          = "timingCluster"
	AccountCreationCluster = "accountCreationCluster"
	RatingDistribution     = "ratingDistribution"
)

// Media category signal names; media detectors live outside this repo and post scores in
const (
	ImageReuse    = "imageReuse"
	MediaPresence = "mediaPresence"
)

// Categories lists the known categories in presentation order
var Categories = []Category{CategoryText, CategoryAccount, CategoryBehavioral, CategoryMedia}
