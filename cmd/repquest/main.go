package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chalkline-games/repquest/internal/clock"
	"github.com/chalkline-games/repquest/internal/config"
	"github.com/chalkline-games/repquest/internal/database"
	"github.com/chalkline-games/repquest/internal/equipment"
	"github.com/chalkline-games/repquest/internal/feed"
	"github.com/chalkline-games/repquest/internal/items"
	"github.com/chalkline-games/repquest/internal/logger"
	"github.com/chalkline-games/repquest/internal/minigame"
	"github.com/chalkline-games/repquest/internal/npc"
	"github.com/chalkline-games/repquest/internal/player"
	"github.com/chalkline-games/repquest/internal/quest"
	"github.com/chalkline-games/repquest/internal/save"
	"github.com/chalkline-games/repquest/internal/trainer"
	"github.com/chalkline-games/repquest/internal/ui"
	"github.com/chalkline-games/repquest/internal/workout"
	"github.com/chalkline-games/repquest/internal/world"
)

func main() {
	// Parse command-line flags
	configFile := flag.String("config", "data/repquest.yaml", "Path to game config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	dataDir := flag.String("data", "", "Path to data directory (overrides config)")
	profileName := flag.String("profile", "", "Profile name (prompted when empty)")
	slot := flag.Int("slot", 1, "Save slot to play")
	reset := flag.Bool("reset", false, "Start a fresh game, ignoring the slot's save")
	feedEnabled := flag.Bool("feed", false, "Force-enable the activity feed server")
	seed := flag.Int64("seed", 0, "Random seed (default: random based on current time)")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*loggingConfig)
	if err := logger.Initialize(logConfig); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	logger.Info("Starting RepQuest")

	// Load game configuration
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", *configFile, err)
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}
	if *feedEnabled {
		cfg.Feed.Enabled = true
	}

	// Use provided seed or generate from time
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))
	logger.Info("Random seed selected", "seed", rngSeed, "random", *seed == 0)

	// Build registries: built-in defaults plus optional YAML overlays
	// from the data directory.
	machines := equipment.NewRegistry()
	machines.LoadDefaults()
	loadOverlay(filepath.Join(cfg.Data.Dir, "equipment.yaml"), machines.LoadFromYAML)

	templates := quest.DefaultTemplates()
	loadOverlay(filepath.Join(cfg.Data.Dir, "quests.yaml"), templates.LoadFromYAML)

	catalog := items.NewCatalog()
	catalog.LoadDefaults()
	loadOverlay(filepath.Join(cfg.Data.Dir, "shop.yaml"), catalog.LoadFromYAML)

	messages := trainer.DefaultMessages()
	loadOverlay(filepath.Join(cfg.Data.Dir, "trainer.yaml"), messages.LoadFromYAML)

	gym := world.Default()
	mapFile := filepath.Join(cfg.Data.Dir, "gym_map.yaml")
	if _, err := os.Stat(mapFile); err == nil {
		loaded, err := world.LoadFromYAML(mapFile)
		if err != nil {
			log.Fatalf("Failed to load map %s: %v", mapFile, err)
		}
		gym = loaded
		logger.Info("Map loaded", "file", mapFile)
	}

	// Open the profile and save store
	store, err := database.Open(cfg.StoreConfig())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	// Select or create a profile before the TUI takes the terminal
	profile, err := selectProfile(store, cfg, *profileName)
	if err != nil {
		log.Fatalf("Profile selection failed: %v", err)
	}
	logger.Info("Profile selected", "name", profile.Name, "id", profile.ID)

	// Assemble the engines
	spawnX, spawnY := gym.Spawn()
	hero := player.New(profile.Name, spawnX, spawnY, cfg.Gameplay.StartingCurrency)
	quests := quest.NewEngine(templates, clock.Real{}, rng)
	inventory := items.NewInventory(catalog)
	coach := trainer.New(messages, rng)
	crowd := npc.NewManager(gym, npc.DefaultCount, rng)
	sessions := minigame.NewManager(rng)
	rewards := workout.New(hero, quests, machines, coach)

	// Load the slot unless this is a fresh start
	saves := save.NewManager(store)
	settings := save.DefaultSettings()
	if *reset {
		logger.Info("Starting fresh game", "slot", *slot)
	} else {
		exists, err := saves.Exists(profile.ID, *slot)
		if err != nil {
			log.Fatalf("Failed to check save slot %d: %v", *slot, err)
		}
		if exists {
			settings, err = saves.Load(profile.ID, *slot, hero, quests, inventory)
			if err != nil {
				log.Fatalf("Failed to load save slot %d: %v", *slot, err)
			}
			logger.Info("Save loaded", "slot", *slot, "level", hero.Level)
		}
	}

	if err := store.TouchProfile(profile.ID); err != nil {
		logger.Warning("Failed to update last played time", "error", err)
	}

	game := ui.Game{
		World:     gym,
		Player:    hero,
		Quests:    quests,
		Machines:  machines,
		Catalog:   catalog,
		Inventory: inventory,
		Coach:     coach,
		Crowd:     crowd,
		Sessions:  sessions,
		Rewards:   rewards,
	}

	// Start the activity feed server if enabled
	if cfg.Feed.Enabled {
		hub := feed.NewHub(profile.Name)
		server := feed.NewServer(cfg.Feed, hub)
		go func() {
			if err := server.Start(); err != nil {
				logger.Error("Feed server stopped", "error", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			server.Shutdown(ctx)
		}()

		rewards.SetNotifier(hub)
		game.Feed = hub
	}

	// Run the game. Saving on quit is the model's job.
	model := ui.New(game, saves, profile.ID, *slot, settings, cfg.Gameplay.AutosaveSeconds)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}

	logger.Info("RepQuest shut down cleanly")
}

// loadOverlay applies a YAML overlay when the file exists. A missing
// file just means the built-in defaults stand; a malformed one is fatal
// so a typo doesn't silently fall back.
func loadOverlay(path string, load func(string) error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}
	if err := load(path); err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}
	logger.Info("Overlay loaded", "file", path)
}

// selectProfile resolves the profile to play: look up the named profile,
// verify its PIN when it has one, or walk through creating a new one.
// Runs on plain stdin/stdout before the TUI starts.
func selectProfile(store *database.Store, cfg *config.GameConfig, name string) (*database.Profile, error) {
	reader := bufio.NewReader(os.Stdin)

	if name == "" {
		profiles, err := store.ListProfiles()
		if err != nil {
			return nil, fmt.Errorf("failed to list profiles: %w", err)
		}
		if len(profiles) > 0 {
			fmt.Println("Profiles:")
			for _, p := range profiles {
				fmt.Printf("  %s\n", p.Name)
			}
		}
		name = prompt(reader, "Profile name: ")
		if name == "" {
			return nil, fmt.Errorf("no profile name given")
		}
	}

	profile, err := store.GetProfileByName(name)
	if err == database.ErrProfileNotFound {
		return createProfile(store, cfg, reader, name)
	}
	if err != nil {
		return nil, err
	}

	if profile.HasPIN() {
		for attempts := 0; attempts < 3; attempts++ {
			pin := prompt(reader, fmt.Sprintf("PIN for %s: ", profile.Name))
			verified, err := store.VerifyPIN(profile.Name, pin)
			if err == nil {
				return verified, nil
			}
			if err != database.ErrInvalidPIN {
				return nil, err
			}
			fmt.Println("Wrong PIN.")
		}
		return nil, fmt.Errorf("too many wrong PIN attempts")
	}

	return profile, nil
}

// createProfile makes a new profile, offering an optional PIN.
func createProfile(store *database.Store, cfg *config.GameConfig, reader *bufio.Reader, name string) (*database.Profile, error) {
	fmt.Printf("Creating profile %q.\n", name)

	pin := ""
	answer := prompt(reader, "Protect it with a PIN? [y/N]: ")
	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		for {
			pin = prompt(reader, fmt.Sprintf("PIN (%s): ", cfg.PIN.GetRequirementsText()))
			if msg := cfg.PIN.ValidatePIN(pin); msg != "" {
				fmt.Println(msg)
				continue
			}
			break
		}
	}

	profile, err := store.CreateProfile(name, pin)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
