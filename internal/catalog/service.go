package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"course-service/internal/blob"
	"course-service/internal/logger"
)

// pdfContentType is the only media type accepted for plan attachments.
const pdfContentType = "application/pdf"

// ErrTooLarge is a validation failure for uploads over the size ceiling.
// Kept distinct so the HTTP layer can answer 413 instead of 400.
var ErrTooLarge = fmt.Errorf("%w: file too large", ErrValidation)

// Upload describes an incoming plan attachment.
type Upload struct {
	Name        string // original client filename
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Service composes the catalog store and the blob store to implement each
// admin mutation as one coherent operation. It is the only writer of the
// catalog; every operation performs exactly one full-catalog write, at the
// end, only on the success path.
type Service struct {
	store          Store
	blobs          blob.Store
	maxUploadBytes int64
}

func NewService(store Store, blobs blob.Store, maxUploadBytes int64) *Service {
	return &Service{
		store:          store,
		blobs:          blobs,
		maxUploadBytes: maxUploadBytes,
	}
}

// Courses returns a read-only snapshot of the catalog.
func (s *Service) Courses(ctx context.Context) ([]Course, error) {
	return s.store.Load(ctx)
}

func (s *Service) AddCourse(ctx context.Context, title string) error {
	return s.store.Update(ctx, func(courses []Course) ([]Course, error) {
		return append(courses, Course{
			ID:    uuid.NewString(),
			Title: title,
			Plans: []Plan{},
		}), nil
	})
}

func (s *Service) EditCourse(ctx context.Context, index int, title string) error {
	return s.store.Update(ctx, func(courses []Course) ([]Course, error) {
		if index < 0 || index >= len(courses) {
			return nil, fmt.Errorf("%w: course %d", ErrNotFound, index)
		}
		courses[index].Title = title
		return courses, nil
	})
}

// DeleteCourse removes a course after deleting every plan's blob.
// Blob deletes are best effort: a failed delete leaks an orphaned object
// but never blocks catalog cleanup.
func (s *Service) DeleteCourse(ctx context.Context, index int) error {
	return s.store.Update(ctx, func(courses []Course) ([]Course, error) {
		if index < 0 || index >= len(courses) {
			return nil, fmt.Errorf("%w: course %d", ErrNotFound, index)
		}

		for _, plan := range courses[index].Plans {
			if plan.Filename == nil {
				continue
			}
			if err := s.blobs.Delete(ctx, *plan.Filename); err != nil {
				logger.Warn("blob delete failed, object orphaned", map[string]any{
					"key":   *plan.Filename,
					"error": err.Error(),
				})
			}
		}

		return append(courses[:index], courses[index+1:]...), nil
	})
}

// AddPlan appends a plan to a course. When a file is attached it is
// validated, uploaded and verified before the catalog write records its key:
// a failed upload never produces a plan pointing at a missing object.
func (s *Service) AddPlan(ctx context.Context, courseIndex int, name string, file *Upload) error {
	return s.store.Update(ctx, func(courses []Course) ([]Course, error) {
		if courseIndex < 0 || courseIndex >= len(courses) {
			return nil, fmt.Errorf("%w: course %d", ErrNotFound, courseIndex)
		}

		plan := Plan{Name: name}
		if file != nil {
			key, err := s.uploadAttachment(ctx, file)
			if err != nil {
				return nil, err
			}
			plan.Filename = &key
		}

		courses[courseIndex].Plans = append(courses[courseIndex].Plans, plan)
		return courses, nil
	})
}

// EditPlan always updates the plan's name. When a replacement file is given
// the new object is uploaded first and the old one deleted only after the
// catalog write recording the new key succeeds, so the plan never points at
// a deleted object.
func (s *Service) EditPlan(ctx context.Context, courseIndex, planIndex int, name string, file *Upload) error {
	var oldKey *string

	err := s.store.Update(ctx, func(courses []Course) ([]Course, error) {
		if courseIndex < 0 || courseIndex >= len(courses) ||
			planIndex < 0 || planIndex >= len(courses[courseIndex].Plans) {
			return nil, fmt.Errorf("%w: course %d plan %d", ErrNotFound, courseIndex, planIndex)
		}

		plan := &courses[courseIndex].Plans[planIndex]
		plan.Name = name

		if file != nil {
			key, err := s.uploadAttachment(ctx, file)
			if err != nil {
				return nil, err
			}
			oldKey = plan.Filename
			plan.Filename = &key
		}

		return courses, nil
	})
	if err != nil {
		return err
	}

	if oldKey != nil {
		if err := s.blobs.Delete(ctx, *oldKey); err != nil {
			logger.Warn("blob delete failed, object orphaned", map[string]any{
				"key":   *oldKey,
				"error": err.Error(),
			})
		}
	}

	return nil
}

// DeletePlan deletes the plan's blob (best effort) and removes the plan
// from the catalog.
func (s *Service) DeletePlan(ctx context.Context, courseIndex, planIndex int) error {
	return s.store.Update(ctx, func(courses []Course) ([]Course, error) {
		if courseIndex < 0 || courseIndex >= len(courses) ||
			planIndex < 0 || planIndex >= len(courses[courseIndex].Plans) {
			return nil, fmt.Errorf("%w: course %d plan %d", ErrNotFound, courseIndex, planIndex)
		}

		plans := courses[courseIndex].Plans
		if key := plans[planIndex].Filename; key != nil {
			if err := s.blobs.Delete(ctx, *key); err != nil {
				logger.Warn("blob delete failed, object orphaned", map[string]any{
					"key":   *key,
					"error": err.Error(),
				})
			}
		}

		courses[courseIndex].Plans = append(plans[:planIndex], plans[planIndex+1:]...)
		return courses, nil
	})
}

// ReorderCourses applies an index permutation to the course list.
func (s *Service) ReorderCourses(ctx context.Context, order []int) error {
	return s.store.Update(ctx, func(courses []Course) ([]Course, error) {
		reordered, err := applyOrder(courses, order)
		if err != nil {
			return nil, err
		}
		return reordered, nil
	})
}

// ReorderPlans applies an index permutation to one course's plan list.
func (s *Service) ReorderPlans(ctx context.Context, courseIndex int, order []int) error {
	return s.store.Update(ctx, func(courses []Course) ([]Course, error) {
		if courseIndex < 0 || courseIndex >= len(courses) {
			return nil, fmt.Errorf("%w: course %d", ErrNotFound, courseIndex)
		}

		reordered, err := applyOrder(courses[courseIndex].Plans, order)
		if err != nil {
			return nil, err
		}
		courses[courseIndex].Plans = reordered
		return courses, nil
	})
}

// Reconcile drops plan entries whose referenced object is missing from the
// blob store and reports how many were removed. It is a manual repair tool,
// never run automatically.
func (s *Service) Reconcile(ctx context.Context) (int, error) {
	keys, err := s.blobs.List(ctx)
	if err != nil {
		return 0, err
	}
	exists := make(map[string]bool, len(keys))
	for _, k := range keys {
		exists[k] = true
	}

	removed := 0
	err = s.store.Update(ctx, func(courses []Course) ([]Course, error) {
		for i := range courses {
			kept := courses[i].Plans[:0]
			for _, plan := range courses[i].Plans {
				if plan.Filename != nil && !exists[*plan.Filename] {
					removed++
					logger.Info("reconcile dropped dangling plan", map[string]any{
						"course": courses[i].Title,
						"plan":   plan.Name,
						"key":    *plan.Filename,
					})
					continue
				}
				kept = append(kept, plan)
			}
			courses[i].Plans = kept
		}
		return courses, nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

// uploadAttachment validates the upload, derives its storage key and pushes
// the bytes to the blob store. The key is only returned (and therefore only
// recorded) once the upload has succeeded.
func (s *Service) uploadAttachment(ctx context.Context, file *Upload) (string, error) {
	if file.ContentType != pdfContentType {
		return "", fmt.Errorf("%w: content type %q, only PDF allowed", ErrValidation, file.ContentType)
	}
	if file.Size > s.maxUploadBytes {
		return "", fmt.Errorf("%w: %d bytes over %d limit", ErrTooLarge, file.Size, s.maxUploadBytes)
	}

	key, err := blob.NewKey(file.Name)
	if err != nil {
		return "", fmt.Errorf("%w: key generation: %v", ErrStorage, err)
	}

	if err := s.blobs.Upload(ctx, key, file.Reader, file.Size, file.ContentType); err != nil {
		return "", err
	}

	return key, nil
}

func applyOrder[T any](items []T, order []int) ([]T, error) {
	if len(order) != len(items) {
		return nil, fmt.Errorf("%w: order has %d entries, list has %d", ErrValidation, len(order), len(items))
	}

	seen := make(map[int]bool, len(order))
	for _, idx := range order {
		if idx < 0 || idx >= len(items) || seen[idx] {
			return nil, fmt.Errorf("%w: order is not a permutation", ErrValidation)
		}
		seen[idx] = true
	}

	out := make([]T, len(items))
	for pos, idx := range order {
		out[pos] = items[idx]
	}
	return out, nil
}
