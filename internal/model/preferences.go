package model

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type Language string

const (
	LanguageSystem  Language = "system"
	LanguageEnglish Language = "en"
	LanguageChinese Language = "zh"
)

type UserPreferences struct {
	Theme                Theme    `json:"theme"`
	Language             Language `json:"language"`
	NotificationsEnabled bool     `json:"notificationsEnabled"`
	GenAIEnabled         bool     `json:"genAiEnabled"`
	SyncOnCellular       bool     `json:"syncOnCellular"`
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Theme:                ThemeSystem,
		Language:             LanguageSystem,
		NotificationsEnabled: true,
		GenAIEnabled:         true,
		SyncOnCellular:       false,
	}
}
