// Package media opens images kept in blob buckets so they can be uploaded as multipart parts.
package media

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
	"sync"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	"pos/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// maxImageBytes matches the largest logo the backend accepts
const maxImageBytes = 5 << 20

type blobSource struct {
	allowed  []string
	validate *validator.Validate
	logger   *slog.Logger

	mu      sync.Mutex
	buckets map[string]*blob.Bucket
}

// SourceParams holds dependencies for the blob image source, injected by Fx
type SourceParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSource creates the image source and closes opened buckets on shutdown
func NewSource(params SourceParams) service.ImageSource {
	source := newBlobSource(params.Config.Media.AllowedSchemes, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return source.Close()
		},
	})

	return source
}

func newBlobSource(allowed []string, logger *slog.Logger) *blobSource {
	normalized := make([]string, 0, len(allowed))
	for _, scheme := range allowed {
		if scheme = strings.ToLower(strings.TrimSpace(scheme)); scheme != "" {
			normalized = append(normalized, scheme)
		}
	}

	return &blobSource{
		allowed:  normalized,
		validate: validator.New(),
		logger:   logger,
		buckets:  make(map[string]*blob.Bucket),
	}
}

func (s *blobSource) Open(ctx context.Context, ref entity.BlobRef) (*entity.ImageFile, error) {
	if err := s.validate.Struct(ref); err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails(err.Error()))
	}

	bucket, err := s.bucket(ctx, ref.Bucket)
	if err != nil {
		return nil, err
	}

	attrs, err := bucket.Attributes(ctx, ref.Key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("blob not found: " + ref.Key))
		}

		return nil, errors.Wrapf(err, "stat blob %s", ref.Key)
	}
	if attrs.Size > maxImageBytes {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("image too large"))
	}

	data, err := bucket.ReadAll(ctx, ref.Key)
	if err != nil {
		return nil, errors.Wrapf(err, "read blob %s", ref.Key)
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("not an image: " + contentType))
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Image loaded from bucket",
		slog.String("bucket", ref.Bucket),
		slog.String("key", ref.Key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return &entity.ImageFile{
		Filename:    path.Base(ref.Key),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (s *blobSource) bucket(ctx context.Context, rawURL string) (*blob.Bucket, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("invalid bucket url"))
	}
	if !slices.Contains(s.allowed, strings.ToLower(parsed.Scheme)) {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("bucket scheme not allowed: " + parsed.Scheme))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if bucket, ok := s.buckets[rawURL]; ok {
		return bucket, nil
	}

	bucket, err := blob.OpenBucket(ctx, rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", rawURL)
	}
	s.buckets[rawURL] = bucket

	return bucket, nil
}

// Close closes every opened bucket
func (s *blobSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for key, bucket := range s.buckets {
		if err := bucket.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "close bucket %s", key))
		}
		delete(s.buckets, key)
	}
	if len(errs) > 0 {
		return errs[0]
	}

	return nil
}
