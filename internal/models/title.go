package models

// TitleEntry is a player title as exported from the game data
type TitleEntry struct {
	Name     string `json:"name"`
	RareType string `json:"rareType"`
}
