package migrations

import "gorm.io/gorm"

func GetOutingMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_06_10_000000_create_outing_tables",
			Up: func(db *gorm.DB) error {
				// Create events table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS events (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						course_name VARCHAR(255),
						course_city VARCHAR(255),
						course_state VARCHAR(50),
						event_date VARCHAR(50),
						start_time VARCHAR(50),
						start_type VARCHAR(50) DEFAULT 'Shotgun',
						holes_played INT DEFAULT 18,
						field_size INT,
						team_size INT DEFAULT 4,
						format VARCHAR(50) DEFAULT 'Captains Choice',
						mens_tee VARCHAR(50) DEFAULT 'White',
						womens_tee VARCHAR(50) DEFAULT 'Red',
						seniors_age INT DEFAULT 60,
						seniors_tee VARCHAR(50) DEFAULT 'Gold',
						super_seniors_age INT DEFAULT 70,
						super_seniors_tee VARCHAR(50),
						max_handicap_index FLOAT DEFAULT 40,
						required_drives_per_player INT DEFAULT 4,
						penalty_missing_drives INT DEFAULT 2,
						lie_improvement_distance VARCHAR(100) DEFAULT '1 club length',
						same_cut_requirement BOOLEAN DEFAULT TRUE,
						bunker_rake_and_place BOOLEAN DEFAULT TRUE,
						lift_clean_place BOOLEAN DEFAULT TRUE,
						lift_clean_place_areas VARCHAR(100) DEFAULT 'fairway',
						ob_rule VARCHAR(50) DEFAULT 'stroke_and_distance',
						e5_local_rule BOOLEAN DEFAULT FALSE,
						gimme_allowed BOOLEAN DEFAULT TRUE,
						gimme_distance VARCHAR(100) DEFAULT 'putter grip',
						max_score_rule VARCHAR(50) DEFAULT 'net_double_bogey',
						max_search_time INT DEFAULT 3,
						ready_golf BOOLEAN DEFAULT TRUE,
						handicap_basis VARCHAR(50) DEFAULT 'USGA',
						team_handicap_method VARCHAR(50) DEFAULT 'Option A',
						team_handicap_percentages VARCHAR(100),
						competition_type VARCHAR(20) DEFAULT 'both',
						use_flights BOOLEAN DEFAULT TRUE,
						number_of_flights INT DEFAULT 1,
						flight_method VARCHAR(50) DEFAULT 'team_handicap',
						tiebreak_method VARCHAR(50) DEFAULT 'matchback',
						tiebreak_order VARCHAR(100) DEFAULT 'back9,last6,last3,18th',
						sudden_death BOOLEAN DEFAULT FALSE,
						skins_enabled BOOLEAN DEFAULT FALSE,
						skins_type VARCHAR(20) DEFAULT 'net',
						skins_entry_fee FLOAT,
						ctp_enabled BOOLEAN DEFAULT FALSE,
						ctp_holes VARCHAR(100),
						ctp_categories VARCHAR(100),
						long_drive_enabled BOOLEAN DEFAULT FALSE,
						long_drive_holes VARCHAR(100),
						long_drive_categories VARCHAR(100),
						straight_drive_enabled BOOLEAN DEFAULT FALSE,
						straight_drive_hole VARCHAR(50),
						longest_putt_enabled BOOLEAN DEFAULT FALSE,
						longest_putt_holes VARCHAR(100),
						three_putt_pot_enabled BOOLEAN DEFAULT FALSE,
						three_putt_amount FLOAT,
						mulligans_enabled BOOLEAN DEFAULT FALSE,
						mulligan_price FLOAT,
						mulligan_limit INT,
						mulligan_use VARCHAR(20) DEFAULT 'tee_only',
						entry_fee_individual FLOAT,
						entry_fee_team FLOAT,
						entry_includes VARCHAR(255),
						prize_pool_teams FLOAT,
						prize_pool_skins FLOAT,
						prize_pool_ctp FLOAT,
						prize_pool_charity FLOAT,
						prize_type VARCHAR(20) DEFAULT 'cash',
						payout_structure VARCHAR(100),
						max_teams INT,
						max_players INT,
						registration_cutoff VARCHAR(50),
						payment_deadline VARCHAR(50),
						waitlist_enabled BOOLEAN DEFAULT TRUE,
						checkin_open_time VARCHAR(50),
						tee_gift VARCHAR(255),
						scoring_method VARCHAR(20) DEFAULT 'physical',
						live_scoring_enabled BOOLEAN DEFAULT FALSE,
						cart_assignment_method VARCHAR(20) DEFAULT 'sequential',
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_events_deleted_at ON events(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Create teams table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS teams (
						id BIGSERIAL PRIMARY KEY,
						event_id BIGINT NOT NULL,
						team_name VARCHAR(255),
						team_number INT,
						team_handicap FLOAT,
						flight VARCHAR(50),
						flight_number INT DEFAULT 1,
						cart_number INT,
						hole_assignment INT,
						gross_score INT,
						net_score INT,
						access_code VARCHAR(20),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_teams_deleted_at ON teams(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_teams_event_id ON teams(event_id);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_access_code ON teams(access_code) WHERE access_code IS NOT NULL;
				`).Error; err != nil {
					return err
				}

				// Create players table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						team_id BIGINT NOT NULL,
						event_id BIGINT NOT NULL,
						first_name VARCHAR(100),
						last_name VARCHAR(100),
						email VARCHAR(255),
						phone VARCHAR(50),
						handicap_index FLOAT,
						course_handicap INT,
						tee_preference VARCHAR(50),
						gender VARCHAR(20),
						age_category VARCHAR(20),
						payment_status VARCHAR(20),
						checked_in BOOLEAN DEFAULT FALSE,
						checkin_time VARCHAR(50),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE CASCADE,
						FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_players_deleted_at ON players(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id);
					CREATE INDEX IF NOT EXISTS idx_players_event_id ON players(event_id);
				`).Error; err != nil {
					return err
				}

				// Create scores table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS scores (
						id BIGSERIAL PRIMARY KEY,
						team_id BIGINT NOT NULL,
						hole_number INT NOT NULL,
						strokes INT,
						drive_used_player_id BIGINT,
						recorded_by VARCHAR(100),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_scores_deleted_at ON scores(deleted_at);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_scores_team_hole ON scores(team_id, hole_number);
				`).Error; err != nil {
					return err
				}

				// Create score_audits table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS score_audits (
						id BIGSERIAL PRIMARY KEY,
						team_id BIGINT NOT NULL,
						hole_number INT,
						old_strokes INT,
						new_strokes INT,
						old_drive_used_player_id BIGINT,
						new_drive_used_player_id BIGINT,
						changed_by VARCHAR(100),
						change_source VARCHAR(20) DEFAULT 'mobile',
						timestamp TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_score_audits_team_id ON score_audits(team_id);
					CREATE INDEX IF NOT EXISTS idx_score_audits_timestamp ON score_audits(timestamp);
				`).Error; err != nil {
					return err
				}

				// Create side_game_results table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS side_game_results (
						id BIGSERIAL PRIMARY KEY,
						event_id BIGINT NOT NULL,
						game_type VARCHAR(50),
						hole_number INT,
						player_id BIGINT,
						team_id BIGINT,
						measurement VARCHAR(100),
						prize_amount FLOAT,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_side_game_results_event_id ON side_game_results(event_id);
				`).Error; err != nil {
					return err
				}

				// Create mulligans table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS mulligans (
						id BIGSERIAL PRIMARY KEY,
						team_id BIGINT NOT NULL,
						player_id BIGINT,
						hole_number INT,
						shot_type VARCHAR(50),
						used_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_mulligans_team_id ON mulligans(team_id);
					CREATE INDEX IF NOT EXISTS idx_mulligans_player_id ON mulligans(player_id);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				// Drop tables in reverse order (because of foreign keys)
				for _, table := range []string{
					"mulligans",
					"side_game_results",
					"score_audits",
					"scores",
					"players",
					"teams",
					"events",
				} {
					if err := db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE").Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
