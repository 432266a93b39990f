package entity

import "encoding/json"

// CharacterBasic mirrors the upstream /character/basic payload. Field names
// follow the Nexon Open API wire format.
type CharacterBasic struct {
	Date                     string `json:"date"`
	CharacterName            string `json:"character_name"`
	WorldName                string `json:"world_name"`
	CharacterGender          string `json:"character_gender"`
	CharacterClass           string `json:"character_class"`
	CharacterClassLevel      string `json:"character_class_level"`
	CharacterLevel           int    `json:"character_level"`
	CharacterEXP             int64  `json:"character_exp"`
	CharacterEXPRate         string `json:"character_exp_rate"`
	CharacterGuildName       string `json:"character_guild_name"`
	CharacterImage           string `json:"character_image"`
	CharacterDateCreate      string `json:"character_date_create"`
	AccessFlag               string `json:"access_flag"`
	LiberationQuestClearFlag string `json:"liberation_quest_clear_flag"`
}

// CompositeCharacterRecord is the merged result of one character lookup.
// The basic info fields sit at the top level via embedding; every other
// section carries the corresponding sub-fetch payload verbatim. The record
// is a value object built fresh per lookup and owned solely by the caller.
type CompositeCharacterRecord struct {
	CharacterBasic

	Stats       json.RawMessage `json:"stats"`
	Popularity  json.RawMessage `json:"popularity"`
	Items       json.RawMessage `json:"items"`
	CashItems   json.RawMessage `json:"cashItems"`
	Symbols     json.RawMessage `json:"symbols"`
	LinkSkills  json.RawMessage `json:"linkSkills"`
	VMatrix     json.RawMessage `json:"vMatrix"`
	HexaMatrix  json.RawMessage `json:"hexaMatrix"`
	Dojang      json.RawMessage `json:"dojang"`
	Union       json.RawMessage `json:"union"`
	UnionRaider json.RawMessage `json:"unionRaider"`
}

// BossClearRecord is one entry of a character's weekly boss clear list.
type BossClearRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CrystalValue int64  `json:"crystalValue"`
	Difficulty   string `json:"difficulty"`
}

// GuildRanking is one row of the upstream guild ranking.
type GuildRanking struct {
	Date            string `json:"date"`
	WorldName       string `json:"world_name"`
	GuildName       string `json:"guild_name"`
	GuildLevel      int    `json:"guild_level"`
	GuildMark       string `json:"guild_mark"`
	GuildPoint      int64  `json:"guild_point"`
	Ranking         int    `json:"ranking"`
	GuildMasterName string `json:"guild_master_name"`
}
