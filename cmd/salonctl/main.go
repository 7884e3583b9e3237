// salonctl is the terminal counterpart of the salon admin panel: the same
// tabs (dashboard, services, bookings, categories, holidays) as
// subcommands over the API client.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"salon-admin/client"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	baseURL := os.Getenv("SALON_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	tokenPath, err := client.DefaultTokenPath()
	if err != nil {
		log.Fatalf("cannot locate config dir: %v", err)
	}
	api := client.New(baseURL, client.NewTokenStore(tokenPath))

	ctx := context.Background()
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "login":
		err = runLogin(ctx, api, args)
	case "signup":
		err = runSignup(ctx, api, args)
	case "logout":
		err = api.Logout()
	case "dashboard":
		err = withAuth(api, func() error { return runDashboard(ctx, api) })
	case "services":
		err = withAuth(api, func() error { return runServices(ctx, api, args) })
	case "categories":
		err = withAuth(api, func() error { return runCategories(ctx, api, args) })
	case "bookings":
		err = withAuth(api, func() error { return runBookings(ctx, api, args) })
	case "holidays":
		err = withAuth(api, func() error { return runHolidays(ctx, api, args) })
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		var verr *client.ValidationError
		if errors.As(err, &verr) {
			for field, msg := range verr.Fields {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
			}
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: salonctl <command> [flags]

commands:
  login      -email -password
  signup     -first -last -email -phone -password -confirm -agree
  logout
  dashboard
  services   list | add | edit | rm
  categories list | add | rm
  bookings   list | create | confirm | complete | cancel | slots
  holidays   list | add | rm`)
}

// withAuth gates every tab command on a stored token, the way the panel
// only mounts the shell when one is present.
func withAuth(api *client.Client, fn func() error) error {
	if !api.Tokens().IsAuthenticated() {
		return errors.New("not logged in; run: salonctl login")
	}
	return fn()
}

func runLogin(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return errors.New("email and password are required")
	}

	user, err := api.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func runSignup(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	form := client.SignUpForm{}
	fs.StringVar(&form.FirstName, "first", "", "first name")
	fs.StringVar(&form.LastName, "last", "", "last name")
	fs.StringVar(&form.Email, "email", "", "email")
	fs.StringVar(&form.Phone, "phone", "", "phone number")
	fs.StringVar(&form.Password, "password", "", "password")
	fs.StringVar(&form.ConfirmPassword, "confirm", "", "confirm password")
	fs.BoolVar(&form.AgreeToTerms, "agree", false, "agree to the terms and conditions")
	fs.Parse(args)

	user, err := api.SignUp(ctx, form)
	if err != nil {
		return err
	}
	fmt.Printf("Account created for %s <%s>\n", user.Name, user.Email)
	return nil
}

// runDashboard fetches services and bookings concurrently, joins, then
// derives the three headline numbers.
func runDashboard(ctx context.Context, api *client.Client) error {
	services := client.NewServiceCollection(api)
	bookings := client.NewBookings(api)

	var wg sync.WaitGroup
	var serviceErr, bookingErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		serviceErr = services.Fetch(ctx)
	}()
	go func() {
		defer wg.Done()
		bookingErr = bookings.Fetch(ctx)
	}()
	wg.Wait()

	if serviceErr != nil {
		return serviceErr
	}
	if bookingErr != nil {
		return bookingErr
	}

	today := time.Now().Format("2006-01-02")
	fmt.Printf("Today's bookings: %d\n", client.TodaysBookingCount(bookings.Items, today))
	fmt.Printf("Revenue (paid):   %.2f\n", client.Revenue(bookings.Items))
	fmt.Printf("Active services:  %d\n", client.ActiveServiceCount(services.Items))
	return nil
}

func runServices(ctx context.Context, api *client.Client, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	col := client.NewServiceCollection(api)

	switch args[0] {
	case "list":
		if err := col.Fetch(ctx); err != nil {
			return err
		}
		if len(col.Items) == 0 {
			fmt.Println("No services available.")
			return nil
		}
		for _, s := range col.Items {
			fmt.Printf("%s  %-24s %3d min  %8.2f  %s\n", s.ID, s.Name, s.Duration, s.Price, s.Category)
		}
		return nil

	case "add", "edit":
		fs := flag.NewFlagSet("services "+args[0], flag.ExitOnError)
		id := fs.String("id", "", "service id (edit only)")
		name := fs.String("name", "", "service name")
		duration := fs.String("duration", "", "duration in minutes")
		price := fs.String("price", "", "price")
		category := fs.String("category", "", "category name")
		description := fs.String("description", "", "description")
		fs.Parse(args[1:])

		if *name == "" || *duration == "" || *price == "" || *category == "" {
			return errors.New("name, duration, price and category are required")
		}
		durationVal, err := strconv.Atoi(*duration)
		if err != nil {
			return fmt.Errorf("duration must be a whole number of minutes: %w", err)
		}
		priceVal, err := strconv.ParseFloat(*price, 64)
		if err != nil {
			return fmt.Errorf("price must be a number: %w", err)
		}

		// The category selector: loaded separately, with explicit
		// placeholders for the loading and empty states.
		names, err := client.CategoryNames(ctx, api)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return errors.New("no categories; create one first with: salonctl categories add")
		}
		known := false
		for _, n := range names {
			if n == *category {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown category %q, pick one of: %s", *category, strings.Join(names, ", "))
		}

		input := client.ServiceInput{
			Name:        *name,
			Duration:    durationVal,
			Price:       priceVal,
			Category:    *category,
			Description: *description,
		}

		if args[0] == "edit" {
			if *id == "" {
				return errors.New("-id is required for edit")
			}
			updated, err := col.Update(ctx, *id, input)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", updated.Name)
			return nil
		}

		created, err := col.Create(ctx, input)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", created.Name, created.ID)
		return nil

	case "rm":
		if len(args) < 2 {
			return errors.New("usage: salonctl services rm <id>")
		}
		// No confirmation for services, mirroring the panel
		return col.Delete(ctx, args[1])
	}

	return fmt.Errorf("unknown services subcommand %q", args[0])
}

func runCategories(ctx context.Context, api *client.Client, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	col := client.NewCategoryCollection(api)

	switch args[0] {
	case "list":
		if err := col.Fetch(ctx); err != nil {
			return err
		}
		if len(col.Items) == 0 {
			fmt.Println("No data found")
			return nil
		}
		for _, c := range col.Items {
			fmt.Printf("%s  %-20s %s\n", c.ID, c.Name, c.Description)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("categories add", flag.ExitOnError)
		name := fs.String("name", "", "category name")
		description := fs.String("description", "", "category description")
		fs.Parse(args[1:])

		if strings.TrimSpace(*name) == "" {
			return errors.New("category name cannot be empty")
		}
		created, err := col.Create(ctx, client.CategoryInput{Name: *name, Description: *description})
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", created.Name, created.ID)
		return nil

	case "rm":
		if len(args) < 2 {
			return errors.New("usage: salonctl categories rm <id>")
		}
		if !confirm("Are you sure you want to delete this category?") {
			return nil
		}
		return col.Delete(ctx, args[1])
	}

	return fmt.Errorf("unknown categories subcommand %q", args[0])
}

func runBookings(ctx context.Context, api *client.Client, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	bookings := client.NewBookings(api)

	switch args[0] {
	case "list":
		if err := bookings.Fetch(ctx); err != nil {
			return err
		}
		if len(bookings.Items) == 0 {
			fmt.Println("No bookings found.")
			return nil
		}
		for _, b := range bookings.Items {
			names := make([]string, 0, len(b.Services))
			for _, s := range b.Services {
				names = append(names, s.Name)
			}
			fmt.Printf("%s  %-20s %-30s %s %s  %-9s %s\n",
				b.ID, b.CustomerName, strings.Join(names, ", "),
				b.AppointmentDate, b.AppointmentTime, b.Status, b.PaymentStatus)
		}
		return nil

	case "confirm", "complete", "cancel":
		if len(args) < 2 {
			return fmt.Errorf("usage: salonctl bookings %s <id>", args[0])
		}
		status := map[string]string{
			"confirm":  "confirmed",
			"complete": "completed",
			"cancel":   "cancelled",
		}[args[0]]

		if err := bookings.Fetch(ctx); err != nil {
			return err
		}
		if err := bookings.UpdateStatus(ctx, args[1], status); err != nil {
			return err
		}
		fmt.Printf("Booking %s is now %s\n", args[1], status)

		// Confirming also offers a pre-filled confirmation mail, best effort
		if status == "confirmed" {
			if b, ok := findBooking(bookings.Items, args[1]); ok && b.CustomerEmail != "" {
				fmt.Println("Send a confirmation:", client.ConfirmationMailto(b))
			}
		}
		return nil

	case "slots":
		if len(args) < 2 {
			return errors.New("usage: salonctl bookings slots <YYYY-MM-DD>")
		}
		slots, err := api.Availability(ctx, args[1])
		if err != nil {
			return err
		}
		if len(slots) == 0 {
			fmt.Println("No slots available.")
			return nil
		}
		fmt.Println(strings.Join(slots, "\n"))
		return nil

	case "create":
		return runManualBooking(ctx, api, bookings, args[1:])
	}

	return fmt.Errorf("unknown bookings subcommand %q", args[0])
}

func runManualBooking(ctx context.Context, api *client.Client, bookings *client.Bookings, args []string) error {
	fs := flag.NewFlagSet("bookings create", flag.ExitOnError)
	draft := client.BookingDraft{}
	services := fs.String("services", "", "comma-separated service ids")
	fs.StringVar(&draft.CustomerName, "name", "", "customer name")
	fs.StringVar(&draft.CustomerEmail, "email", "", "customer email")
	fs.StringVar(&draft.CustomerPhone, "phone", "", "customer phone")
	fs.StringVar(&draft.Note, "note", "", "free-text note")
	fs.StringVar(&draft.Address, "address", "", "customer address")
	fs.StringVar(&draft.Date, "date", "", "appointment date (YYYY-MM-DD)")
	fs.StringVar(&draft.Time, "time", "", "appointment time (a slot from bookings slots)")
	fs.Parse(args)

	if draft.CustomerName == "" || draft.Date == "" || draft.Time == "" || *services == "" {
		return errors.New("name, date, time and services are required")
	}

	// The time must come from the server's open slots for that date
	slots, err := api.Availability(ctx, draft.Date)
	if err != nil {
		return err
	}
	valid := false
	for _, slot := range slots {
		if slot == draft.Time {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%q is not an open slot on %s", draft.Time, draft.Date)
	}

	col := client.NewServiceCollection(api)
	if err := col.Fetch(ctx); err != nil {
		return err
	}
	for _, id := range strings.Split(*services, ",") {
		svc, ok := col.Find(strings.TrimSpace(id))
		if !ok {
			return fmt.Errorf("unknown service id %q", id)
		}
		draft.Toggle(client.BookingService{
			ID:       svc.ID,
			Name:     svc.Name,
			Price:    svc.Price,
			Duration: svc.Duration,
		})
	}

	fmt.Printf("Total: %.2f\n", draft.Total())
	if err := bookings.CreateManual(ctx, draft); err != nil {
		return err
	}
	fmt.Printf("Booking created; %d bookings on record\n", len(bookings.Items))
	return nil
}

func runHolidays(ctx context.Context, api *client.Client, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		leaves, err := api.Holidays(ctx)
		if err != nil {
			return err
		}
		if len(leaves) == 0 {
			fmt.Println("No leaves recorded.")
			return nil
		}
		for _, h := range leaves {
			who := h.User
			if who == "" {
				who = "(salon closed)"
			}
			fmt.Printf("%s  %s  %-16s %s\n", h.ID, h.Date, who, h.Description)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("holidays add", flag.ExitOnError)
		user := fs.String("user", "", "staff member, empty for salon-wide closure")
		date := fs.String("date", "", "date (YYYY-MM-DD)")
		description := fs.String("description", "", "description")
		fs.Parse(args[1:])

		if *date == "" {
			return errors.New("date is required")
		}
		leave, err := api.CreateHoliday(ctx, *user, *date, *description)
		if err != nil {
			return err
		}
		fmt.Printf("Leave recorded for %s (%s)\n", leave.Date, leave.ID)
		return nil

	case "rm":
		if len(args) < 2 {
			return errors.New("usage: salonctl holidays rm <id>")
		}
		return api.DeleteHoliday(ctx, args[1])
	}

	return fmt.Errorf("unknown holidays subcommand %q", args[0])
}

func findBooking(items []client.Booking, id string) (client.Booking, bool) {
	for _, b := range items {
		if b.ID == id {
			return b, true
		}
	}
	return client.Booking{}, false
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
