// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "fmt"

// Kind selects the coercion applied to a field's raw value.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field maps one environment variable to one output key.
type Field struct {
	// Env is the environment variable name, matched case-sensitively.
	Env string
	// Key is the output key. Settings-map keys are flat dotted strings
	// such as "Gameplay.TreeRegrowth".
	Key string
	// Kind selects the coercion.
	Kind Kind
	// Default is used when the variable is absent (and, for numbers, when
	// it is empty). A nil Default falls back to the kind's zero default.
	Default any
	// Enum holds the allowed values of a KindEnum field.
	Enum Enum
}

// Resolve coerces the raw variable into the field's output value.
func (f Field) Resolve(value string, ok bool) (any, error) {
	switch f.Kind {
	case KindBool:
		def, _ := f.Default.(bool)
		return CoerceBool(value, ok, def), nil
	case KindInt:
		def, _ := f.Default.(int)
		return CoerceInt(f.Env, value, ok, def)
	case KindFloat:
		def, isSet := f.Default.(float64)
		if !isSet {
			def = 1.0
		}
		n, err := CoerceFloat(f.Env, value, ok, def)
		return Float(n), err
	case KindString:
		def, _ := f.Default.(string)
		return CoerceString(value, ok, def), nil
	case KindEnum:
		if err := CheckEnum(f.Env, value, ok, f.Enum); err != nil {
			return nil, err
		}
		def, _ := f.Default.(string)
		return CoerceString(value, ok, def), nil
	default:
		return nil, fmt.Errorf("field %s: unsupported kind %s", f.Env, f.Kind)
	}
}

// Section is an ordered group of fields written into one Settings map.
type Section struct {
	Name   string
	Fields []Field
	// OmitAbsent drops fields whose variable is unset instead of writing
	// their default.
	OmitAbsent bool
}

var (
	levels       = NewEnum("Low", "Normal", "High")
	seasons      = NewEnum("Spring", "Summer", "Autumn", "Winter")
	lengths      = NewEnum("Short", "Default", "Long", "Realistic")
	frequencies  = NewEnum("Low", "Default", "High")
	difficulties = NewEnum("Normal", "Hard")
	penalties    = NewEnum("Off", "Normal", "Hard")
	saveModes    = NewEnum("New", "Continue")
	gameModes    = NewEnum("Normal", "Hard", "Hardsurvival", "Peaceful", "Creative", "Custom")
)

// BaseFields are the top-level server settings. Every one has a default and
// is always written.
var BaseFields = []Field{
	{Env: "IPADDRESS", Key: "IpAddress", Kind: KindString, Default: "0.0.0.0"},
	{Env: "GAMEPORT", Key: "GamePort", Kind: KindInt, Default: 8766},
	{Env: "QUERYPORT", Key: "QueryPort", Kind: KindInt, Default: 27016},
	{Env: "BLOBSYNCPORT", Key: "BlobSyncPort", Kind: KindInt, Default: 9700},
	{Env: "SERVERNAME", Key: "ServerName", Kind: KindString, Default: "My Sotf Server"},
	{Env: "MAXPLAYERS", Key: "MaxPlayers", Kind: KindInt, Default: 8},
	{Env: "PASSWORD", Key: "Password", Kind: KindString, Default: ""},
	{Env: "LANONLY", Key: "LanOnly", Kind: KindBool, Default: false},
	{Env: "SAVESLOT", Key: "SaveSlot", Kind: KindInt, Default: 1},
	{Env: "SAVEMODE", Key: "SaveMode", Kind: KindEnum, Default: "Continue", Enum: saveModes},
	{Env: "GAMEMODE", Key: "GameMode", Kind: KindEnum, Default: "Normal", Enum: gameModes},
	{Env: "SAVEINTERVAL", Key: "SaveInterval", Kind: KindInt, Default: 600},
	{Env: "IDLEDAYCYCLESPEED", Key: "IdleDayCycleSpeed", Kind: KindFloat, Default: 0.0},
	{Env: "IDLETARGETFRAMERATE", Key: "IdleTargetFramerate", Kind: KindInt, Default: 5},
	{Env: "ACTIVETARGETFRAMERATE", Key: "ActiveTargetFramerate", Kind: KindInt, Default: 60},
	{Env: "LOGFILESENABLED", Key: "LogFilesEnabled", Kind: KindBool, Default: true},
	{Env: "TIMESTAMPLOGFILENAMES", Key: "TimestampLogFilenames", Kind: KindBool, Default: true},
	{Env: "TIMESTAMPLOGENTRIES", Key: "TimestampLogEntries", Kind: KindBool, Default: true},
	{Env: "SKIPNETWORKACCESSIBILITYTEST", Key: "SkipNetworkAccessibilityTest", Kind: KindBool, Default: false},
}

// GameFields populate the "GameSettings" map.
var GameFields = []Field{
	{Env: "TREEREGROWTH", Key: "Gameplay.TreeRegrowth", Kind: KindBool},
	{Env: "STRUCTUREDAMAGE", Key: "Structure.Damage", Kind: KindBool},
}

// CustomGameModeFields populate the "CustomGameModeSettings" map, in the
// order they are written.
var CustomGameModeFields = []Field{
	{Env: "CHEATS", Key: "GameSetting.Multiplayer.Cheats", Kind: KindBool},
	{Env: "ENEMYSPAWN", Key: "GameSetting.Vail.EnemySpawn", Kind: KindString},
	{Env: "ENEMYHEALTH", Key: "GameSetting.Vail.EnemyHealth", Kind: KindEnum, Enum: levels},
	{Env: "ENEMYDAMAGE", Key: "GameSetting.Vail.EnemyDamage", Kind: KindEnum, Enum: levels},
	{Env: "ENEMYARMOUR", Key: "GameSetting.Vail.EnemyArmour", Kind: KindEnum, Enum: levels},
	{Env: "ENEMYAGGRESSION", Key: "GameSetting.Vail.EnemyAggression", Kind: KindEnum, Enum: levels},
	{Env: "ANIMALSPAWNRATE", Key: "GameSetting.Vail.AnimalSpawnRate", Kind: KindEnum, Enum: levels},
	{Env: "ENEMYSEARCHPARTIES", Key: "GameSetting.Vail.EnemySearchParties", Kind: KindEnum, Enum: levels},
	{Env: "STARTINGSEASON", Key: "GameSetting.Environment.StartingSeason", Kind: KindEnum, Enum: seasons},
	{Env: "SEASONLENGTH", Key: "GameSetting.Environment.SeasonLength", Kind: KindEnum, Enum: lengths},
	{Env: "DAYLENGTH", Key: "GameSetting.Environment.DayLength", Kind: KindEnum, Enum: lengths},
	{Env: "PRECIPITATIONFREQUENCY", Key: "GameSetting.Environment.PrecipitationFrequency", Kind: KindEnum, Enum: frequencies},
	{Env: "CONSUMABLEEFFECTS", Key: "GameSetting.Survival.ConsumableEffects", Kind: KindEnum, Enum: difficulties},
	{Env: "PLAYERSTATSDAMAGE", Key: "GameSetting.Survival.PlayerStatsDamage", Kind: KindEnum, Enum: penalties},
	{Env: "COLDPENALTIES", Key: "GameSetting.Survival.ColdPenalties", Kind: KindEnum, Enum: penalties},
	{Env: "STATREGENERATIONPENALTY", Key: "GameSetting.Survival.StatRegenerationPenalty", Kind: KindEnum, Enum: penalties},
	{Env: "REDUCEDFOODINCONTAINERS", Key: "GameSetting.Survival.ReducedFoodInContainers", Kind: KindBool},
	{Env: "SINGLEUSECONTAINERS", Key: "GameSetting.Survival.SingleUseContainers", Kind: KindBool},
	{Env: "BUILDINGRESISTANCE", Key: "GameSetting.Survival.BuildingResistance", Kind: KindEnum, Enum: levels},
	{Env: "CREATIVEMODE", Key: "GameSetting.Survival.CreativeMode", Kind: KindBool},
	{Env: "PLAYERSIMMORTALMODE", Key: "GameSetting.Survival.PlayersImmortalMode", Kind: KindBool},
	{Env: "FORCEPLACEFULLLOAD", Key: "GameSetting.FreeForm.ForcePlaceFullLoad", Kind: KindBool},
	{Env: "NOCUTTINGSSPAWN", Key: "GameSetting.Construction.NoCuttingsSpawn", Kind: KindBool},
	{Env: "ONEHITTOCUTTREE", Key: "GameSetting.Survival.OneHitToCutTrees", Kind: KindBool},
}

// Sections lists the three sections in build order.
func Sections() []Section {
	return []Section{
		{Name: "Base", Fields: BaseFields},
		{Name: GameSettingsKey, Fields: GameFields, OmitAbsent: true},
		{Name: CustomGameModeSettingsKey, Fields: CustomGameModeFields, OmitAbsent: true},
	}
}
