package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
)

var (
	env   string
	clear bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample data",
		Long:  `Create test accounts, tickets and messages for local development.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete existing data before seeding")

	return cmd
}

type seedUser struct {
	email    string
	password string
	role     user.Role
}

type seedTicket struct {
	title       string
	description string
	status      string
	priority    string
	creator     int
	assignee    int
	tags        []string
}

type seedMessage struct {
	content string
	ticket  int
	author  int
}

// Indexes reference the users slice: 0 admin, 1 support, 2..4 regular users.
// An assignee or author of -1 means unassigned.
var (
	seedUsers = []seedUser{
		{"admin@helpdesk.local", "admin123", user.RoleAdmin},
		{"support@helpdesk.local", "support123", user.RoleSupport},
		{"john.doe@example.com", "user123", user.RoleUser},
		{"jane.smith@example.com", "user123", user.RoleUser},
		{"bob.martin@example.com", "user123", user.RoleUser},
	}

	seedTickets = []seedTicket{
		{
			title:       "Cannot log in to my account",
			description: "I have not been able to log in since yesterday. I reset my password but it still does not work.",
			status:      "open", priority: "high", creator: 2, assignee: -1,
			tags: []string{"login", "urgent", "account"},
		},
		{
			title:       "Order never arrived",
			description: "I placed an order three days ago and it still has not arrived. The status has shown \"out for delivery\" for two days.",
			status:      "in-progress", priority: "urgent", creator: 3, assignee: 1,
			tags: []string{"order", "delivery", "delay"},
		},
		{
			title:       "Question about delivery hours",
			description: "What delivery time slots are available in my area?",
			status:      "closed", priority: "low", creator: 4, assignee: 1,
			tags: []string{"information", "schedule"},
		},
		{
			title:       "Payment error at checkout",
			description: "I keep getting a \"transaction failed\" error when paying for my order. My bank account has sufficient funds.",
			status:      "open", priority: "high", creator: 2, assignee: -1,
			tags: []string{"payment", "error", "transaction"},
		},
		{
			title:       "Refund request",
			description: "My order arrived damaged. I would like a refund.",
			status:      "in-progress", priority: "medium", creator: 3, assignee: 1,
			tags: []string{"refund", "damage"},
		},
		{
			title:       "Mobile app keeps crashing",
			description: "The app closes every time I try to view my past orders.",
			status:      "open", priority: "medium", creator: 4, assignee: -1,
			tags: []string{"app", "bug", "mobile"},
		},
		{
			title:       "Change delivery address",
			description: "I need to update the delivery address for my next order.",
			status:      "closed", priority: "low", creator: 2, assignee: 1,
			tags: []string{"address", "change"},
		},
		{
			title:       "Question about promotions",
			description: "Are there any promotions running this week?",
			status:      "closed", priority: "low", creator: 3, assignee: -1,
			tags: []string{"promotion", "information"},
		},
	}

	seedMessages = []seedMessage{
		{"Hello, I have the same problem. Can you help me too?", 0, 3},
		{"We have identified the issue. Please try logging in again now.", 0, 1},
		{"Hello, I will check the status of your order with the delivery service.", 1, 1},
		{"Thanks for following up. I will wait for your update.", 1, 3},
		{"Your order should arrive today. The courier has been contacted.", 1, 1},
		{"Deliveries run Monday through Saturday from 10am to 8pm.", 2, 1},
		{"Perfect, thanks for the information!", 2, 4},
		{"Can you give me more details about the exact error you are seeing?", 3, 1},
		{"Sorry for the inconvenience. Could you send us a photo of the damaged package?", 4, 1},
		{"Here is a photo of the damaged package.", 4, 3},
		{"Which app version are you using, and on which device?", 5, 1},
		{"Your address has been updated successfully.", 6, 1},
		{"Thank you very much!", 6, 2},
	}
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	ctx := context.Background()

	if clear {
		log.Info("clearing existing data")
		for _, table := range []string{"messages", "tickets", "users"} {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
	}

	userRepo := repository.NewUserRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)
	messageRepo := repository.NewMessageRepository(db, log)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	users := make([]*user.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := hasher.Hash(su.password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", su.email, err)
		}
		u, err := user.NewUser(su.email, hash, su.role)
		if err != nil {
			return fmt.Errorf("invalid seed user %s: %w", su.email, err)
		}
		if err := userRepo.Save(ctx, u); err != nil {
			return fmt.Errorf("failed to save user %s: %w", su.email, err)
		}
		users = append(users, u)
	}
	log.Infow("created users", "count", len(users))

	tickets := make([]*ticket.Ticket, 0, len(seedTickets))
	for _, st := range seedTickets {
		var assigneeID *uint
		if st.assignee >= 0 {
			id := users[st.assignee].ID()
			assigneeID = &id
		}
		tk, err := ticket.NewTicket(st.title, st.description, st.status, st.priority, users[st.creator].ID(), assigneeID, st.tags)
		if err != nil {
			return fmt.Errorf("invalid seed ticket %q: %w", st.title, err)
		}
		if err := ticketRepo.Save(ctx, tk); err != nil {
			return fmt.Errorf("failed to save ticket %q: %w", st.title, err)
		}
		tickets = append(tickets, tk)
	}
	log.Infow("created tickets", "count", len(tickets))

	for _, sm := range seedMessages {
		msg, err := ticket.NewMessage(sm.content, tickets[sm.ticket].ID(), users[sm.author].ID())
		if err != nil {
			return fmt.Errorf("invalid seed message: %w", err)
		}
		if err := messageRepo.Save(ctx, msg); err != nil {
			return fmt.Errorf("failed to save message: %w", err)
		}
	}
	log.Infow("created messages", "count", len(seedMessages))

	fmt.Println("Test accounts:")
	for _, su := range seedUsers {
		fmt.Printf("  %-8s %s / %s\n", string(su.role)+":", su.email, su.password)
	}

	log.Info("database seeded successfully")
	return nil
}
