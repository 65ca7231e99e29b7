package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	authService "github.com/theclub/api/internal/auth/service"
	userDomain "github.com/theclub/api/internal/user/domain"
	userUseCase "github.com/theclub/api/internal/user/usecase"
)

// RunCreateUser creates an account with an explicit role. Self-registration
// through the API always produces readers; this command is the only path for
// provisioning admins, editors and writers. Outputs the created account in
// either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userRepo userUseCase.UserRepository,
	secretService authService.SecretService,
	logger *slog.Logger,
	name string,
	email string,
	password string,
	roleStr string,
	active bool,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new user",
		slog.String("email", email),
		slog.String("role", roleStr),
	)

	role, err := userDomain.ParseRole(strings.ToUpper(strings.TrimSpace(roleStr)))
	if err != nil {
		return fmt.Errorf("invalid role %q (valid options: ADMIN, EDITOR, WRITER, READER)", roleStr)
	}

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	hashedPassword, err := secretService.HashSecret(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &userDomain.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
		Active:   active,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputUserJSON(user, io.Writer)
	} else {
		outputUserText(user, io.Writer)
	}

	logger.Info("user created successfully",
		slog.Int64("user_id", user.ID),
		slog.String("email", email),
		slog.String("role", string(role)),
		slog.Bool("active", active),
	)

	return nil
}

// outputUserText outputs the result in human-readable text format.
func outputUserText(user *userDomain.User, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nUser created successfully!")
	_, _ = fmt.Fprintf(writer, "ID: %d\n", user.ID)
	_, _ = fmt.Fprintf(writer, "Name: %s\n", user.Name)
	_, _ = fmt.Fprintf(writer, "Email: %s\n", user.Email)
	_, _ = fmt.Fprintf(writer, "Role: %s\n", user.Role)
	_, _ = fmt.Fprintf(writer, "Active: %t\n", user.Active)
}

// outputUserJSON outputs the result in JSON format for machine consumption.
func outputUserJSON(user *userDomain.User, writer io.Writer) {
	result := map[string]any{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"role":   string(user.Role),
		"active": user.Active,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
