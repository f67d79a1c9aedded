package jar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestReplaceJarsUseCase_Execute(t *testing.T) {
	t.Run("rejects a color outside the gradient palette", func(t *testing.T) {
		repo := &fakeJarRepo{}
		uc := NewReplaceJarsUseCase(repo)

		jar := entity.NewJar("Essentials", "", 70, "🏠", entity.GradientColor("neon"), nil)

		_, err := uc.Execute(context.Background(), ReplaceJarsInput{Jars: []*entity.Jar{jar}})
		if err == nil {
			t.Fatal("expected error, got nil")
		}

		var jarErr *domainerror.JarError
		if !errors.As(err, &jarErr) {
			t.Fatalf("expected JarError, got %T", err)
		}
		if jarErr.Code != domainerror.ErrCodeInvalidJarColor {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidJarColor, jarErr.Code)
		}
		if len(repo.jars) != 0 {
			t.Errorf("snapshot should be untouched, found %d jars", len(repo.jars))
		}
	})

	t.Run("preserves creation timestamp for surviving jar IDs", func(t *testing.T) {
		original := entity.NewJar("Essentials", "", 70, "🏠", entity.ColorPink, nil)
		original.CreatedAt = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
		repo := &fakeJarRepo{jars: []*entity.Jar{original}}
		uc := NewReplaceJarsUseCase(repo)

		edited := entity.NewJar("Essentials", "", 60, "🏠", entity.ColorPink, nil)
		edited.ID = original.ID
		added := entity.NewJar("Fun", "", 40, "🎉", entity.ColorPurple, nil)

		output, err := uc.Execute(context.Background(), ReplaceJarsInput{
			Jars: []*entity.Jar{edited, added},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Jars) != 2 {
			t.Fatalf("expected 2 jars, got %d", len(output.Jars))
		}
		if !output.Jars[0].CreatedAt.Equal(original.CreatedAt) {
			t.Errorf("surviving jar should keep CreatedAt %s, got %s", original.CreatedAt, output.Jars[0].CreatedAt)
		}
		if output.Jars[1].CreatedAt.Equal(original.CreatedAt) {
			t.Error("new jar should not inherit another jar's CreatedAt")
		}
		if output.Jars[0].Percentage != 60 {
			t.Errorf("expected edited percentage 60, got %v", output.Jars[0].Percentage)
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		repo := &fakeJarRepo{}
		uc := NewReplaceJarsUseCase(repo)

		jar := entity.NewJar("", "", 50, "🏠", entity.ColorPink, nil)

		_, err := uc.Execute(context.Background(), ReplaceJarsInput{Jars: []*entity.Jar{jar}})

		var jarErr *domainerror.JarError
		if !errors.As(err, &jarErr) {
			t.Fatalf("expected JarError, got %T", err)
		}
		if jarErr.Code != domainerror.ErrCodeMissingJarName {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingJarName, jarErr.Code)
		}
	})
}
