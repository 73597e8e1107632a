package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"moovsafe/internal/utils"
	"moovsafe/pkg/logger"
	"moovsafe/pkg/storage"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidImage marks uploads rejected before they reach the object store;
// handlers translate it to a 400.
var ErrInvalidImage = errors.New("invalid image")

// UploadedFile pairs the public URL of a stored object with the key it was
// stored under.
type UploadedFile struct {
	URL string
	Key string
}

type MediaService interface {
	// UploadImages stores every file under folder and returns the results in
	// the same order the files were supplied. Any failure aborts the batch.
	UploadImages(ctx context.Context, folder string, files []*multipart.FileHeader) ([]UploadedFile, error)
	// UploadImage stores a single file under folder.
	UploadImage(ctx context.Context, folder string, file *multipart.FileHeader) (*UploadedFile, error)
	// DeleteImages removes stored objects by key. Failures are logged and do
	// not stop the remaining deletions; record removal must not hinge on
	// object-store cleanup.
	DeleteImages(ctx context.Context, keys []string)
}

type mediaService struct {
	provider storage.Provider
	logger   *logger.Logger
}

func NewMediaService(provider storage.Provider, logger *logger.Logger) MediaService {
	return &mediaService{
		provider: provider,
		logger:   logger,
	}
}

func (s *mediaService) UploadImages(ctx context.Context, folder string, files []*multipart.FileHeader) ([]UploadedFile, error) {
	for _, file := range files {
		if err := validateImage(file); err != nil {
			return nil, err
		}
	}

	uploaded := make([]UploadedFile, len(files))

	g, groupCtx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			result, err := s.uploadOne(groupCtx, folder, file)
			if err != nil {
				return err
			}
			uploaded[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return uploaded, nil
}

func (s *mediaService) UploadImage(ctx context.Context, folder string, file *multipart.FileHeader) (*UploadedFile, error) {
	if err := validateImage(file); err != nil {
		return nil, err
	}

	return s.uploadOne(ctx, folder, file)
}

func (s *mediaService) DeleteImages(ctx context.Context, keys []string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.provider.Delete(ctx, key); err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("Failed to delete stored image")
			continue
		}
		s.logger.LogUploadEvent("delete", key, 0)
	}
}

func (s *mediaService) uploadOne(ctx context.Context, folder string, file *multipart.FileHeader) (*UploadedFile, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %s: %w", file.Filename, err)
	}
	defer src.Close()

	key := utils.NewObjectKey(folder, file.Filename)

	response, err := s.provider.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      src,
		ContentType: utils.ContentTypeForFile(file.Filename),
		Size:        file.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", file.Filename, err)
	}

	s.logger.LogUploadEvent("upload", response.Key, response.Size)

	return &UploadedFile{URL: response.URL, Key: response.Key}, nil
}

func validateImage(file *multipart.FileHeader) error {
	if !utils.IsAllowedImage(file.Filename) {
		return fmt.Errorf("%w: unsupported type for %s", ErrInvalidImage, file.Filename)
	}
	if file.Size > utils.MaxImageSize {
		return fmt.Errorf("%w: %s exceeds the %d byte limit", ErrInvalidImage, file.Filename, utils.MaxImageSize)
	}
	return nil
}
