package service

import "github.com/timmy/moodmeme/internal/domain"

// FallbackMemeURL is returned whenever the captioning API cannot produce an image.
const FallbackMemeURL = "https://i.imgflip.com/7f0mne.jpg"

// templateTable maps each sentiment to Imgflip template IDs.
// Repeated IDs are intentional and weight the random pick.
var templateTable = map[domain.Sentiment][]string{
	domain.SentimentHappy: {
		"102156234", "61520", "101511", "1367068", "61544",
		"87743020", "21604242", "134398632", "101511", "100777631",
		"170064501", "177142476",
	},
	domain.SentimentSad: {
		"61579", "80707627", "61580", "438680", "123999232",
		"101501", "129242436", "8874528", "195557", "24524376",
		"54528559", "126768765",
	},
	domain.SentimentAngry: {
		"181913649", "195389", "55311130", "61546", "108785202",
		"16791970", "53613629", "512469", "124120185", "212014606",
		"101513", "1045787",
	},
	domain.SentimentDisgusted: {
		"101470", "129242436", "188390779", "61556", "222403160",
		"114786225", "743193", "306758052", "183418922", "157826504",
		"149430817", "53884553",
	},
	domain.SentimentSurprised: {
		"155067746", "4173692", "129139038", "17496002", "61582",
		"106973319", "287799544", "12418045", "130687708", "5977616",
		"178147410", "107028244",
	},
	domain.SentimentFearful: {
		"442575", "112126428", "259237855", "13767816", "65489615",
		"106746504", "159970062", "142520575", "75983867", "10157337",
		"178195093", "54189002",
	},
	domain.SentimentNeutral: {
		"16464531", "21735", "347390", "718432", "131940431",
		"63690228", "106067193", "154145564", "32881814", "128644734",
		"133632364", "56829925",
	},
}

// captionTable holds caption candidates per sentiment.
// Only the first two are rendered (top, bottom); the rest are unused for now.
var captionTable = map[domain.Sentiment][]string{
	domain.SentimentHappy:     {"Feeling awesome!", "Life is great!", "Best day ever!", "I'm on top of the world!", "This is pure joy!"},
	domain.SentimentSad:       {"This is so sad...", "Why me?", "I'm feeling down...", "Everything is falling apart.", "Tears are real."},
	domain.SentimentAngry:     {"I'm furious!", "How dare they!", "This is so infuriating!", "I can't take this anymore!", "Enough is enough!"},
	domain.SentimentDisgusted: {"Ew, gross!", "That's disgusting!", "Yuck!", "I can't stand it.", "Please stop!"},
	domain.SentimentSurprised: {"Wow, really?", "I can't believe it!", "No way!", "I'm shocked!", "This is insane!"},
	domain.SentimentFearful:   {"Oh no!", "This is terrifying!", "I'm scared!", "What’s happening?", "I can’t handle this!"},
	domain.SentimentNeutral:   {"Meh.", "It's just okay.", "I guess it's fine.", "Not bad, not good.", "Just another day."},
}

// TemplateIDs returns a copy of the template IDs for a sentiment.
func TemplateIDs(s domain.Sentiment) []string {
	return append([]string(nil), templateTable[s]...)
}

// CaptionPair returns the top and bottom caption for a sentiment.
// ok is false when the sentiment has no caption entry.
func CaptionPair(s domain.Sentiment) (top, bottom string, ok bool) {
	captions, found := captionTable[s]
	if !found || len(captions) < 2 {
		return "", "", false
	}
	return captions[0], captions[1], true
}
