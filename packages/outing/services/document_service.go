package services

import (
	"errors"
	"fmt"
	"strings"

	"golf-outing-api/packages/outing/models"
)

// DocumentService renders the printable text artifacts for an event from
// its stored configuration. Pure formatting over an Event; no state.
type DocumentService struct {
	events *EventService
}

func NewDocumentService(events *EventService) *DocumentService {
	return &DocumentService{
		events: events,
	}
}

func (s *DocumentService) GenerateDocument(eventID uint, docType string) (string, error) {
	event, err := s.events.GetEventByID(eventID)
	if err != nil {
		return "", err
	}

	switch docType {
	case "summary":
		return s.eventSummary(event), nil
	case "rules":
		return s.rulesDocument(event), nil
	case "starter-script":
		return s.starterScript(event), nil
	case "scorecard":
		return s.scorecardTemplate(event), nil
	default:
		return "", errors.New("invalid document type")
	}
}

func (s *DocumentService) eventSummary(event *models.Event) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s - Event Summary\n\n", orDefault(event.Name, "Golf Outing"))

	fmt.Fprintf(&b, "## Event Details\n")
	fmt.Fprintf(&b, "- **Course:** %s, %s, %s\n",
		orDefault(event.CourseName, "[Course Name]"),
		orDefault(event.CourseCity, "[City]"),
		orDefault(event.CourseState, "[State]"))
	fmt.Fprintf(&b, "- **Date:** %s\n", orDefault(event.EventDate, "[Date]"))
	fmt.Fprintf(&b, "- **Start Time:** %s\n", orDefault(event.StartTime, "[Time]"))
	fmt.Fprintf(&b, "- **Format:** %d-man %s\n", event.TeamSize, event.Format)
	fmt.Fprintf(&b, "- **Start Type:** %s\n\n", event.StartType)

	fmt.Fprintf(&b, "## Format Overview\n")
	if isScramble(event) {
		fmt.Fprintf(&b, "This is a %d-person Captain's Choice (scramble) tournament. "+
			"All players tee off, the team selects the best shot, and all play from that spot. "+
			"Each player's drive must be used at least %d times during the round.\n\n",
			event.TeamSize, event.RequiredDrivesPerPlayer)
	} else {
		fmt.Fprintf(&b, "This is a %s tournament with %d players per team.\n\n",
			event.Format, event.TeamSize)
	}

	fmt.Fprintf(&b, "## Entry Fees\n")
	fmt.Fprintf(&b, "- **Individual Entry:** $%.0f\n", event.EntryFeeIndividual)
	fmt.Fprintf(&b, "- **Team Entry:** $%.0f\n", event.EntryFeeTeam)
	fmt.Fprintf(&b, "- **Includes:** %s\n\n",
		orDefault(event.EntryIncludes, "Green fee, cart, range balls, prizes"))

	fmt.Fprintf(&b, "## Competition\n")
	fmt.Fprintf(&b, "- **Type:** %s\n", competitionLabel(event.CompetitionType))
	fmt.Fprintf(&b, "- **Flights:** %s\n", yesNo(event.UseFlights))
	fmt.Fprintf(&b, "- **Handicap Method:** %s\n\n", event.TeamHandicapMethod)

	fmt.Fprintf(&b, "## Timeline\n")
	fmt.Fprintf(&b, "- %s - Check-in opens\n", orDefault(event.CheckinOpenTime, "7:00 AM"))
	fmt.Fprintf(&b, "- %s - %s start\n", orDefault(event.StartTime, "8:00 AM"), event.StartType)
	fmt.Fprintf(&b, "- Immediately following - Scoring and awards\n\n")

	fmt.Fprintf(&b, "## Side Games\n")
	if event.SkinsEnabled {
		fmt.Fprintf(&b, "- Skins Game ($%.0f per team)\n", event.SkinsEntryFee)
	}
	if event.CTPEnabled {
		fmt.Fprintf(&b, "- Closest to the Pin\n")
	}
	if event.LongDriveEnabled {
		fmt.Fprintf(&b, "- Long Drive\n")
	}
	if event.StraightDriveEnabled {
		fmt.Fprintf(&b, "- Straight Drive\n")
	}
	if event.LongestPuttEnabled {
		fmt.Fprintf(&b, "- Longest Putt\n")
	}
	if event.MulligansEnabled {
		fmt.Fprintf(&b, "- Mulligans ($%.0f for %d)\n", event.MulliganPrice, event.MulliganLimit)
	}

	return b.String()
}

func (s *DocumentService) rulesDocument(event *models.Event) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s - Official Rules & Format\n\n", orDefault(event.Name, "Golf Outing"))

	if isScramble(event) {
		fmt.Fprintf(&b, "## SCRAMBLE FORMAT RULES\n\n")
		fmt.Fprintf(&b, "### How to Play\n")
		fmt.Fprintf(&b, "1. **All players tee off** on every hole\n")
		fmt.Fprintf(&b, "2. **Team selects the best ball** after each shot\n")
		fmt.Fprintf(&b, "3. **All players play from that spot** (within %s)\n", event.LieImprovementDistance)
		fmt.Fprintf(&b, "4. **Continue until holed**\n\n")

		fmt.Fprintf(&b, "### Required Tee Shots\n")
		fmt.Fprintf(&b, "- Each player's drive must be used at least **%d times** during the round\n",
			event.RequiredDrivesPerPlayer)
		fmt.Fprintf(&b, "- If requirement is not met: **%d-stroke penalty** added to final score\n\n",
			event.PenaltyMissingDrives)

		fmt.Fprintf(&b, "## LIES & PLACEMENT\n\n")
		fmt.Fprintf(&b, "### Ball Placement (Scramble)\n")
		fmt.Fprintf(&b, "- Place ball within **%s** of selected spot\n", event.LieImprovementDistance)
		if event.SameCutRequirement {
			fmt.Fprintf(&b, "- Must remain in same cut of grass (fairway to fairway, rough to rough)\n")
		} else {
			fmt.Fprintf(&b, "- Can be placed in any cut\n")
		}
		fmt.Fprintf(&b, "- Never closer to the hole\n\n")

		fmt.Fprintf(&b, "### Bunkers\n")
		if event.BunkerRakeAndPlace {
			fmt.Fprintf(&b, "- Rake and place\n\n")
		} else {
			fmt.Fprintf(&b, "- Must play from original lie\n\n")
		}
	} else {
		fmt.Fprintf(&b, "## %s FORMAT\n\n", strings.ToUpper(event.Format))
		switch event.Format {
		case "Best Ball":
			fmt.Fprintf(&b, "Each player plays their own ball. The lowest score on each hole counts as the team score.\n\n")
		case "Alternate Shot":
			fmt.Fprintf(&b, "Team members alternate hitting shots. Player A tees off on odd holes, Player B on even holes.\n\n")
		case "Stroke Play":
			fmt.Fprintf(&b, "Individual stroke play. Each player plays their own ball and records their own score.\n\n")
		}
	}

	fmt.Fprintf(&b, "### Preferred Lies\n")
	if event.LiftCleanPlace {
		fmt.Fprintf(&b, "- Lift, clean, and place in effect on %s\n\n", event.LiftCleanPlaceAreas)
	} else {
		fmt.Fprintf(&b, "- Play the ball as it lies\n\n")
	}

	fmt.Fprintf(&b, "## OUT OF BOUNDS & LOST BALLS\n\n")
	switch {
	case event.E5LocalRule:
		fmt.Fprintf(&b, "- E-5 Local Rule: Drop with 2-stroke penalty where ball went OB/lost\n\n")
	case event.OBRule == "lateral_drop":
		fmt.Fprintf(&b, "- Drop laterally with 1-stroke penalty\n\n")
	default:
		fmt.Fprintf(&b, "- Standard stroke and distance penalty applies\n\n")
	}

	fmt.Fprintf(&b, "## PUTTING\n\n### Gimmes\n")
	if event.GimmeAllowed {
		fmt.Fprintf(&b, "- Putts inside %s may be conceded\n\n", event.GimmeDistance)
	} else {
		fmt.Fprintf(&b, "- All putts must be holed\n\n")
	}

	fmt.Fprintf(&b, "## MAXIMUM SCORE\n")
	switch event.MaxScoreRule {
	case "net_double_bogey":
		fmt.Fprintf(&b, "- Net double bogey per hole\n\n")
	case "double_bogey":
		fmt.Fprintf(&b, "- Double bogey per hole\n\n")
	default:
		fmt.Fprintf(&b, "- No maximum\n\n")
	}

	fmt.Fprintf(&b, "## PACE OF PLAY\n")
	fmt.Fprintf(&b, "- Maximum **%d minutes** to search for lost balls\n", event.MaxSearchTime)
	if event.ReadyGolf {
		fmt.Fprintf(&b, "- Ready golf encouraged\n")
	} else {
		fmt.Fprintf(&b, "- Play according to honors\n")
	}
	fmt.Fprintf(&b, "- Keep pace with group ahead\n\n")

	fmt.Fprintf(&b, "## HANDICAPS\n\n### Handicap Basis\n")
	switch event.HandicapBasis {
	case "USGA":
		fmt.Fprintf(&b, "- USGA Handicap Index\n\n")
	case "league":
		fmt.Fprintf(&b, "- League handicap\n\n")
	default:
		fmt.Fprintf(&b, "- Captains estimate for players without official handicap\n\n")
	}

	fmt.Fprintf(&b, "### Team Handicap Calculation\n")
	fmt.Fprintf(&b, "- Method: %s\n", event.TeamHandicapMethod)
	if event.TeamHandicapPercentages != "" {
		fmt.Fprintf(&b, "- Percentages: %s\n", event.TeamHandicapPercentages)
	}
	fmt.Fprintf(&b, "\n## SCORING & COMPETITION\n\n### Format\n- %s\n\n",
		competitionLabel(event.CompetitionType))

	fmt.Fprintf(&b, "### Flights\n")
	if event.UseFlights {
		fmt.Fprintf(&b, "- Teams divided into flights by %s\n\n", event.FlightMethod)
	} else {
		fmt.Fprintf(&b, "- Single flight for all teams\n\n")
	}

	fmt.Fprintf(&b, "### Tiebreakers\n")
	if event.TiebreakMethod == "matchback" {
		fmt.Fprintf(&b, "- Card matchback: %s\n", event.TiebreakOrder)
	}
	if event.SuddenDeath {
		fmt.Fprintf(&b, "- Sudden death playoff if still tied\n\n")
	} else {
		fmt.Fprintf(&b, "- Prize shared if still tied\n\n")
	}

	fmt.Fprintf(&b, "## SIDE GAMES\n\n")
	if event.SkinsEnabled {
		fmt.Fprintf(&b, "### Skins\n- **Type:** %s\n- **Entry Fee:** $%.0f per team\n- Carryovers apply; shared if multiple winners on hole\n\n",
			event.SkinsType, event.SkinsEntryFee)
	}
	if event.CTPEnabled {
		fmt.Fprintf(&b, "### Closest to the Pin\n- **Holes:** %s\n- **Categories:** %s\n- Mark your ball before measuring\n\n",
			orDefault(event.CTPHoles, "TBD"), orDefault(event.CTPCategories, "Overall"))
	}
	if event.LongDriveEnabled {
		fmt.Fprintf(&b, "### Long Drive\n- **Holes:** %s\n- **Categories:** %s\n- Must be in the fairway\n\n",
			orDefault(event.LongDriveHoles, "TBD"), orDefault(event.LongDriveCategories, "Overall"))
	}
	if event.MulligansEnabled {
		use := "Anywhere"
		if event.MulliganUse == "tee_only" {
			use = "Tee shots only"
		}
		fmt.Fprintf(&b, "### Mulligans\n- **Price:** $%.0f for %d mulligans\n- **Use:** %s\n- Declare before hitting\n\n",
			event.MulliganPrice, event.MulliganLimit, use)
	}

	fmt.Fprintf(&b, "## ETIQUETTE & SAFETY\n")
	fmt.Fprintf(&b, "- Repair divots and ball marks\n")
	fmt.Fprintf(&b, "- Keep carts on path where indicated\n")
	fmt.Fprintf(&b, "- Stay off greens and tees with carts\n")
	fmt.Fprintf(&b, "- Be courteous to other groups\n")
	fmt.Fprintf(&b, "- Have fun!\n")

	return b.String()
}

func (s *DocumentService) starterScript(event *models.Event) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Starter Script - %s\n\n", orDefault(event.Name, "Golf Outing"))
	fmt.Fprintf(&b, "Good morning everyone! Welcome to %s!\n\n", orDefault(event.Name, "our golf outing"))

	fmt.Fprintf(&b, "## FORMAT\n")
	if isScramble(event) {
		fmt.Fprintf(&b, "We're playing a **%d-person Captain's Choice scramble** today. Here's how it works:\n", event.TeamSize)
		fmt.Fprintf(&b, "- Everyone tees off\n- Pick the best shot\n- Everyone plays from there\n")
		fmt.Fprintf(&b, "- Each player's drive must be used at least **%d times**\n\n", event.RequiredDrivesPerPlayer)
	} else {
		fmt.Fprintf(&b, "We're playing **%s** today with %d-person teams.\n", event.Format, event.TeamSize)
		switch event.Format {
		case "Best Ball":
			fmt.Fprintf(&b, "- Each player plays their own ball\n- Lowest score counts for the team\n\n")
		case "Alternate Shot":
			fmt.Fprintf(&b, "- Partners alternate hitting shots\n- One ball per team\n\n")
		case "Stroke Play":
			fmt.Fprintf(&b, "- Individual play\n- Everyone plays their own ball\n\n")
		default:
			fmt.Fprintf(&b, "\n")
		}
	}

	fmt.Fprintf(&b, "## KEY RULES\n\n")
	if isScramble(event) {
		cut := "Any cut"
		if event.SameCutRequirement {
			cut = "Same cut of grass"
		}
		fmt.Fprintf(&b, "### Ball Placement (Scramble)\n- Within **%s** of selected spot\n- %s\n- Never closer to hole\n\n",
			event.LieImprovementDistance, cut)
	}

	fmt.Fprintf(&b, "### Special Conditions\n")
	if event.LiftCleanPlace {
		fmt.Fprintf(&b, "- Lift, clean, and place on %s\n", event.LiftCleanPlaceAreas)
	} else {
		fmt.Fprintf(&b, "- Play it as it lies\n")
	}
	if event.GimmeAllowed {
		fmt.Fprintf(&b, "- Gimmes inside %s\n", event.GimmeDistance)
	} else {
		fmt.Fprintf(&b, "- Hole everything out\n")
	}
	if event.BunkerRakeAndPlace {
		fmt.Fprintf(&b, "- Rake and place in bunkers\n\n")
	} else {
		fmt.Fprintf(&b, "- Play bunkers as they lie\n\n")
	}

	fmt.Fprintf(&b, "### Out of Bounds\n")
	switch {
	case event.OBRule == "stroke_and_distance":
		fmt.Fprintf(&b, "- Stroke and distance\n\n")
	case event.E5LocalRule:
		fmt.Fprintf(&b, "- E-5 Rule: drop with 2-stroke penalty\n\n")
	default:
		fmt.Fprintf(&b, "- Lateral drop with 1-stroke penalty\n\n")
	}

	fmt.Fprintf(&b, "## PACE OF PLAY\n")
	fmt.Fprintf(&b, "- Keep up with the group ahead\n")
	if event.ReadyGolf {
		fmt.Fprintf(&b, "- Ready golf - hit when ready\n")
	} else {
		fmt.Fprintf(&b, "- Play honors\n")
	}
	fmt.Fprintf(&b, "- Maximum **%d minutes** for lost balls\n", event.MaxSearchTime)
	fmt.Fprintf(&b, "- Let faster groups play through if you fall behind\n\n")

	fmt.Fprintf(&b, "## COURSE CONDITIONS\n")
	fmt.Fprintf(&b, "- Cart path only where marked\n- Stay off tees and greens\n- Repair divots and ball marks\n\n")

	fmt.Fprintf(&b, "## SIDE GAMES\n")
	if event.CTPEnabled {
		fmt.Fprintf(&b, "- Closest to Pin on holes %s\n", orDefault(event.CTPHoles, "TBD"))
	}
	if event.LongDriveEnabled {
		fmt.Fprintf(&b, "- Long Drive on holes %s\n", orDefault(event.LongDriveHoles, "TBD"))
	}
	if event.SkinsEnabled {
		fmt.Fprintf(&b, "- Skins game in effect\n")
	}

	turnIn := "the clubhouse"
	if event.ScoringMethod == "physical" {
		turnIn = "the scoring table"
	}
	fmt.Fprintf(&b, "\n## AFTER YOUR ROUND\n")
	fmt.Fprintf(&b, "- Sign and verify your scorecard\n")
	fmt.Fprintf(&b, "- Turn in card at %s\n", turnIn)
	fmt.Fprintf(&b, "- Enjoy food and beverages\n- Stick around for awards!\n\n")

	fmt.Fprintf(&b, "## QUESTIONS?\n")
	fmt.Fprintf(&b, "If you have any rules questions during play, please ask a course marshal or call the pro shop.\n\n")
	fmt.Fprintf(&b, "**Have a great round and good luck!**\n")

	return b.String()
}

func (s *DocumentService) scorecardTemplate(event *models.Event) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# SCORECARD - %s\n\n", orDefault(event.Name, "Golf Outing"))

	fmt.Fprintf(&b, "## Team Information\n")
	fmt.Fprintf(&b, "- **Team Name:** _________________\n")
	fmt.Fprintf(&b, "- **Team Number:** _____\n")
	fmt.Fprintf(&b, "- **Flight:** _____\n\n")

	fmt.Fprintf(&b, "## Players\n")
	for i := 1; i <= event.TeamSize; i++ {
		fmt.Fprintf(&b, "%d. _________________________ (HCP: _____)\n", i)
	}
	fmt.Fprintf(&b, "\n**Team Handicap:** _____\n\n")

	fmt.Fprintf(&b, "## Score\n\n")
	fmt.Fprintf(&b, "| Hole | Par | Yardage | Strokes | Drive Used |\n")
	fmt.Fprintf(&b, "|------|-----|---------|---------|------------|\n")
	for hole := 1; hole <= event.HolesPlayed; hole++ {
		fmt.Fprintf(&b, "| %-4d |     |         |         |            |\n", hole)
		if hole == 9 && event.HolesPlayed >= 18 {
			fmt.Fprintf(&b, "| OUT  |     |         |         |            |\n")
		}
	}
	if event.HolesPlayed >= 18 {
		fmt.Fprintf(&b, "| IN   |     |         |         |            |\n")
	}
	fmt.Fprintf(&b, "| TOTAL|     |         |         |            |\n\n")

	fmt.Fprintf(&b, "**Gross Score:** _____\n")
	fmt.Fprintf(&b, "**Team Handicap:** _____\n")
	fmt.Fprintf(&b, "**Net Score:** _____\n\n")

	fmt.Fprintf(&b, "## Side Games\n")
	fmt.Fprintf(&b, "- CTP Winners: _________________________\n")
	fmt.Fprintf(&b, "- Long Drive: __________________________\n")
	fmt.Fprintf(&b, "- Skins: _______________________________\n\n")

	fmt.Fprintf(&b, "## Signatures\n")
	fmt.Fprintf(&b, "All team members must sign to verify score:\n\n")
	for i := 1; i <= event.TeamSize; i++ {
		fmt.Fprintf(&b, "%d. _________________________ Date: _______\n", i)
	}
	fmt.Fprintf(&b, "\n**Turn in to scoring table immediately after finishing.**\n")

	return b.String()
}

func isScramble(event *models.Event) bool {
	return event.Format == "Captains Choice"
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func competitionLabel(competitionType string) string {
	switch competitionType {
	case "both":
		return "Gross and Net"
	case "gross":
		return "Gross Only"
	default:
		return "Net Only"
	}
}
