package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"golf-outing-api/packages/outing/models"
	"golf-outing-api/packages/outing/services"

	"gorm.io/gorm"
)

var firstNames = []string{
	"John", "Mike", "Dave", "Tom", "Bill", "Steve", "Mark", "Chris",
	"Dan", "Jim", "Bob", "Rick", "Joe", "Paul", "Jeff", "Brad",
	"Kevin", "Brian", "Scott", "Tim", "Gary", "Ron", "Ken", "Greg",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor",
	"Thomas", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White",
}

var teamNames = []string{
	"Eagles", "Birdies", "Aces", "Bogeys", "Tigers", "Lions",
	"Hawks", "Falcons", "Sharks", "Dolphins", "Mustangs", "Broncos",
	"Rangers", "Raiders", "Vikings", "Warriors", "Knights", "Titans",
	"Thunder", "Lightning", "Storm", "Blaze", "Rockets", "Comets", "Phoenix",
}

type Fixtures struct {
	db      *gorm.DB
	scores  *services.ScoreService
	flights *services.FlightService
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{
		db:      db,
		scores:  services.NewScoreService(db),
		flights: services.NewFlightService(db),
	}
}

// GenerateTestData creates one fully configured event with 25 teams of 4
// players at varying stages of play, then assigns flights from the scores.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	event, err := f.generateEvent()
	if err != nil {
		return fmt.Errorf("failed to generate event: %w", err)
	}

	teams, err := f.generateTeams(event)
	if err != nil {
		return fmt.Errorf("failed to generate teams: %w", err)
	}

	if err := f.generateScores(teams); err != nil {
		return fmt.Errorf("failed to generate scores: %w", err)
	}

	result, err := f.flights.AssignFlights(event.ID)
	if err != nil {
		return fmt.Errorf("failed to assign flights: %w", err)
	}
	log.Printf("Flights: %s", result.Message)

	f.printSummary(event)

	log.Println("Fixtures generated successfully!")
	return nil
}

func (f *Fixtures) generateEvent() (*models.Event, error) {
	eventDate := time.Now().AddDate(0, 0, 30).Format("2006-01-02")

	log.Println("Creating event with all options enabled...")
	event := models.Event{
		Name:             "Annual Summer Classic Championship",
		CourseName:       "Pine Valley Golf Club",
		CourseCity:       "Springfield",
		CourseState:      "IL",
		EventDate:        eventDate,
		StartTime:        "8:00 AM",
		StartType:        "Shotgun",
		NumberOfFlights:  5,
		HolesPlayed:      18,
		FieldSize:        100,
		TeamSize:         4,
		Format:           "Captains Choice",
		MensTee:          "Blue",
		WomensTee:        "Red",
		SeniorsAge:       60,
		SeniorsTee:       "White",
		SuperSeniorsAge:  70,
		SuperSeniorsTee:  "Gold",
		MaxHandicapIndex: 40.0,

		RequiredDrivesPerPlayer: 4,
		PenaltyMissingDrives:    2,

		LieImprovementDistance: "1 club length",
		SameCutRequirement:     true,
		BunkerRakeAndPlace:     true,
		LiftCleanPlace:         true,
		LiftCleanPlaceAreas:    "fairway",

		OBRule:      "stroke_and_distance",
		E5LocalRule: true,

		GimmeAllowed:  true,
		GimmeDistance: "putter grip",
		MaxScoreRule:  "net_double_bogey",
		MaxSearchTime: 3,
		ReadyGolf:     true,

		HandicapBasis:           "USGA",
		TeamHandicapMethod:      "Option A",
		TeamHandicapPercentages: "25,20,15,10",

		CompetitionType: "both",
		UseFlights:      true,
		FlightMethod:    "team_handicap",
		TiebreakMethod:  "matchback",
		TiebreakOrder:   "back9,last6,last3,18th",
		SuddenDeath:     true,

		SkinsEnabled:         true,
		SkinsType:            "net",
		SkinsEntryFee:        20,
		CTPEnabled:           true,
		CTPHoles:             "3,7,12,16",
		CTPCategories:        "Mens,Womens,Seniors",
		LongDriveEnabled:     true,
		LongDriveHoles:       "9,18",
		LongDriveCategories:  "Mens,Womens",
		StraightDriveEnabled: true,
		StraightDriveHole:    "14",
		LongestPuttEnabled:   true,
		LongestPuttHoles:     "5,11,17",
		ThreePuttPotEnabled:  true,
		ThreePuttAmount:      5,
		MulligansEnabled:     true,
		MulliganPrice:        5,
		MulliganLimit:        2,
		MulliganUse:          "anywhere",

		EntryFeeIndividual: 100,
		EntryFeeTeam:       400,
		EntryIncludes:      "Green fees, cart, lunch, prizes",
		PrizePoolTeams:     8000,
		PrizePoolSkins:     500,
		PrizePoolCTP:       200,
		PrizePoolCharity:   500,
		PrizeType:          "cash",
		PayoutStructure:    "40,30,20,10",

		MaxTeams:           30,
		MaxPlayers:         120,
		RegistrationCutoff: eventDate,
		PaymentDeadline:    eventDate,
		WaitlistEnabled:    true,

		CheckinOpenTime:      "7:00 AM",
		TeeGift:              "Logo ball and tee set",
		ScoringMethod:        "mobile",
		LiveScoringEnabled:   true,
		CartAssignmentMethod: "by_team",
	}

	if err := f.db.Create(&event).Error; err != nil {
		return nil, err
	}

	log.Printf("Created event: %s (ID: %d)", event.Name, event.ID)
	return &event, nil
}

func (f *Fixtures) generateTeams(event *models.Event) ([]models.Team, error) {
	log.Printf("Creating %d teams with %d players...", len(teamNames), len(teamNames)*4)

	var teams []models.Team
	for i, name := range teamNames {
		// Predictable codes so testers can log in to the mobile view
		accessCode := fmt.Sprintf("123%02d", i+1)

		team := models.Team{
			EventID:      event.ID,
			TeamName:     name,
			TeamNumber:   i + 1,
			AccessCode:   &accessCode,
			Flight:       "Flight 1",
			FlightNumber: 1,
		}

		if err := f.db.Create(&team).Error; err != nil {
			return nil, err
		}

		for j := 0; j < 4; j++ {
			firstName := firstNames[rand.Intn(len(firstNames))] // #nosec G404
			lastName := lastNames[rand.Intn(len(lastNames))]    // #nosec G404
			handicap := float64(rand.Intn(24) + 5)              // #nosec G404

			player := models.Player{
				TeamID:        team.ID,
				EventID:       event.ID,
				FirstName:     firstName,
				LastName:      lastName,
				Email:         fmt.Sprintf("%s.%s@email.com", strings.ToLower(firstName), strings.ToLower(lastName)),
				Phone:         fmt.Sprintf("555-%03d-%04d", rand.Intn(900)+100, rand.Intn(9000)+1000), // #nosec G404
				HandicapIndex: &handicap,
				TeePreference: "Blue",
			}

			if err := f.db.Create(&player).Error; err != nil {
				return nil, err
			}
		}

		teams = append(teams, team)
		log.Printf("Created team: %s (ID: %d, code: %s)", name, team.ID, accessCode)
	}

	return teams, nil
}

// generateScores records hole scores through the score service so every
// fixture score carries an audit entry and team gross scores stay exact.
func (f *Fixtures) generateScores(teams []models.Team) error {
	log.Println("Adding scores (teams at various stages of completion)...")

	for i, team := range teams {
		var holesCompleted int
		switch {
		case i < 8:
			// Finished their round
			holesCompleted = 18
		case i < 16:
			// On the back nine
			holesCompleted = rand.Intn(9) + 9 // #nosec G404
		default:
			// Just teed off
			holesCompleted = rand.Intn(8) + 1 // #nosec G404
		}

		var players []models.Player
		if err := f.db.Where("team_id = ?", team.ID).Find(&players).Error; err != nil {
			return err
		}

		for hole := 1; hole <= holesCompleted; hole++ {
			strokes := rand.Intn(3) + 3 // #nosec G404 -- scramble scores run 3 to 5
			req := models.RecordScoreRequest{
				TeamID:     team.ID,
				HoleNumber: hole,
				Strokes:    &strokes,
			}
			if len(players) > 0 {
				drivePlayer := players[rand.Intn(len(players))] // #nosec G404
				req.DriveUsedPlayerID = &drivePlayer.ID
			}

			if _, err := f.scores.RecordScore(req, "manual"); err != nil {
				return err
			}
		}
	}

	log.Println("Added scores for all teams")
	return nil
}

func (f *Fixtures) printSummary(event *models.Event) {
	var teams []models.Team
	f.db.Where("event_id = ?", event.ID).Order("team_number ASC").Find(&teams)

	log.Printf("Event: %s at %s, %s, %s", event.Name, event.CourseName, event.CourseCity, event.CourseState)
	log.Println("Team # | Name          | Access Code | Flight    | Score")
	for _, t := range teams {
		score := "In Progress"
		if t.GrossScore != nil {
			score = fmt.Sprintf("%d", *t.GrossScore)
		}
		code := ""
		if t.AccessCode != nil {
			code = *t.AccessCode
		}
		log.Printf("%-6d | %-13s | %-11s | %-9s | %s", t.TeamNumber, t.TeamName, code, t.Flight, score)
	}
}

// ClearAllData removes all fixture data
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	// Delete in correct order due to foreign key constraints
	tables := []interface{}{
		&models.Mulligan{},
		&models.SideGameResult{},
		&models.ScoreAudit{},
		&models.Score{},
		&models.Player{},
		&models.Team{},
		&models.Event{},
	}

	for _, table := range tables {
		if err := f.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	// Reset auto-increment sequences to start from 1
	sequences := []string{
		"ALTER SEQUENCE events_id_seq RESTART WITH 1",
		"ALTER SEQUENCE teams_id_seq RESTART WITH 1",
		"ALTER SEQUENCE players_id_seq RESTART WITH 1",
		"ALTER SEQUENCE scores_id_seq RESTART WITH 1",
		"ALTER SEQUENCE score_audits_id_seq RESTART WITH 1",
		"ALTER SEQUENCE side_game_results_id_seq RESTART WITH 1",
		"ALTER SEQUENCE mulligans_id_seq RESTART WITH 1",
	}

	for _, seq := range sequences {
		f.db.Exec(seq)
	}

	log.Println("All fixture data cleared!")
	return nil
}
