package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	CourseName   string `gorm:"size:255" json:"course_name"`
	CourseCity   string `gorm:"size:255" json:"course_city"`
	CourseState  string `gorm:"size:50" json:"course_state"`
	EventDate    string `gorm:"size:50" json:"event_date"`
	StartTime    string `gorm:"size:50" json:"start_time"`
	StartType    string `gorm:"size:50;default:Shotgun" json:"start_type"`
	HolesPlayed  int    `gorm:"default:18" json:"holes_played"`
	FieldSize    int    `json:"field_size"`
	TeamSize     int    `gorm:"default:4" json:"team_size"`
	Format       string `gorm:"size:50;default:Captains Choice" json:"format"`

	// Tee settings
	MensTee          string  `gorm:"size:50;default:White" json:"mens_tee"`
	WomensTee        string  `gorm:"size:50;default:Red" json:"womens_tee"`
	SeniorsAge       int     `gorm:"default:60" json:"seniors_age"`
	SeniorsTee       string  `gorm:"size:50;default:Gold" json:"seniors_tee"`
	SuperSeniorsAge  int     `gorm:"default:70" json:"super_seniors_age"`
	SuperSeniorsTee  string  `gorm:"size:50" json:"super_seniors_tee"`
	MaxHandicapIndex float64 `gorm:"default:40" json:"max_handicap_index"`

	// Scramble rules
	RequiredDrivesPerPlayer int `gorm:"default:4" json:"required_drives_per_player"`
	PenaltyMissingDrives    int `gorm:"default:2" json:"penalty_missing_drives"`

	// Lies & placement
	LieImprovementDistance string `gorm:"size:100;default:1 club length" json:"lie_improvement_distance"`
	SameCutRequirement     bool   `gorm:"default:true" json:"same_cut_requirement"`
	BunkerRakeAndPlace     bool   `gorm:"default:true" json:"bunker_rake_and_place"`
	LiftCleanPlace         bool   `gorm:"default:true" json:"lift_clean_place"`
	LiftCleanPlaceAreas    string `gorm:"size:100;default:fairway" json:"lift_clean_place_areas"`

	// Out of bounds & lost balls
	OBRule      string `gorm:"size:50;default:stroke_and_distance" json:"ob_rule"`
	E5LocalRule bool   `gorm:"default:false" json:"e5_local_rule"`

	// Putting
	GimmeAllowed  bool   `gorm:"default:true" json:"gimme_allowed"`
	GimmeDistance string `gorm:"size:100;default:putter grip" json:"gimme_distance"`

	// Max score & pace of play
	MaxScoreRule  string `gorm:"size:50;default:net_double_bogey" json:"max_score_rule"`
	MaxSearchTime int    `gorm:"default:3" json:"max_search_time"`
	ReadyGolf     bool   `gorm:"default:true" json:"ready_golf"`

	// Handicap settings
	HandicapBasis           string `gorm:"size:50;default:USGA" json:"handicap_basis"`
	TeamHandicapMethod      string `gorm:"size:50;default:Option A" json:"team_handicap_method"`
	TeamHandicapPercentages string `gorm:"size:100" json:"team_handicap_percentages"`

	// Competition format
	CompetitionType string `gorm:"size:20;default:both" json:"competition_type"` // gross, net, both
	UseFlights      bool   `gorm:"default:true" json:"use_flights"`
	NumberOfFlights int    `gorm:"default:1" json:"number_of_flights"`
	FlightMethod    string `gorm:"size:50;default:team_handicap" json:"flight_method"`

	// Ties
	TiebreakMethod string `gorm:"size:50;default:matchback" json:"tiebreak_method"`
	TiebreakOrder  string `gorm:"size:100;default:back9,last6,last3,18th" json:"tiebreak_order"`
	SuddenDeath    bool   `gorm:"default:false" json:"sudden_death"`

	// Side games
	SkinsEnabled         bool    `gorm:"default:false" json:"skins_enabled"`
	SkinsType            string  `gorm:"size:20;default:net" json:"skins_type"`
	SkinsEntryFee        float64 `json:"skins_entry_fee"`
	CTPEnabled           bool    `gorm:"default:false" json:"ctp_enabled"`
	CTPHoles             string  `gorm:"size:100" json:"ctp_holes"`
	CTPCategories        string  `gorm:"size:100" json:"ctp_categories"`
	LongDriveEnabled     bool    `gorm:"default:false" json:"long_drive_enabled"`
	LongDriveHoles       string  `gorm:"size:100" json:"long_drive_holes"`
	LongDriveCategories  string  `gorm:"size:100" json:"long_drive_categories"`
	StraightDriveEnabled bool    `gorm:"default:false" json:"straight_drive_enabled"`
	StraightDriveHole    string  `gorm:"size:50" json:"straight_drive_hole"`
	LongestPuttEnabled   bool    `gorm:"default:false" json:"longest_putt_enabled"`
	LongestPuttHoles     string  `gorm:"size:100" json:"longest_putt_holes"`
	ThreePuttPotEnabled  bool    `gorm:"default:false" json:"three_putt_pot_enabled"`
	ThreePuttAmount      float64 `json:"three_putt_amount"`
	MulligansEnabled     bool    `gorm:"default:false" json:"mulligans_enabled"`
	MulliganPrice        float64 `json:"mulligan_price"`
	MulliganLimit        int     `json:"mulligan_limit"`
	MulliganUse          string  `gorm:"size:20;default:tee_only" json:"mulligan_use"`

	// Entry fees & payouts
	EntryFeeIndividual float64 `json:"entry_fee_individual"`
	EntryFeeTeam       float64 `json:"entry_fee_team"`
	EntryIncludes      string  `gorm:"size:255" json:"entry_includes"`
	PrizePoolTeams     float64 `json:"prize_pool_teams"`
	PrizePoolSkins     float64 `json:"prize_pool_skins"`
	PrizePoolCTP       float64 `json:"prize_pool_ctp"`
	PrizePoolCharity   float64 `json:"prize_pool_charity"`
	PrizeType          string  `gorm:"size:20;default:cash" json:"prize_type"`
	PayoutStructure    string  `gorm:"size:100" json:"payout_structure"`

	// Registration
	MaxTeams           int    `json:"max_teams"`
	MaxPlayers         int    `json:"max_players"`
	RegistrationCutoff string `gorm:"size:50" json:"registration_cutoff"`
	PaymentDeadline    string `gorm:"size:50" json:"payment_deadline"`
	WaitlistEnabled    bool   `gorm:"default:true" json:"waitlist_enabled"`

	// Check-in & logistics
	CheckinOpenTime      string `gorm:"size:50" json:"checkin_open_time"`
	TeeGift              string `gorm:"size:255" json:"tee_gift"`
	ScoringMethod        string `gorm:"size:20;default:physical" json:"scoring_method"`
	LiveScoringEnabled   bool   `gorm:"default:false" json:"live_scoring_enabled"`
	CartAssignmentMethod string `gorm:"size:20;default:sequential" json:"cart_assignment_method"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Teams   []Team   `gorm:"foreignKey:EventID" json:"teams,omitempty"`
	Players []Player `gorm:"foreignKey:EventID" json:"players,omitempty"`
}

func (Event) TableName() string {
	return "events"
}
