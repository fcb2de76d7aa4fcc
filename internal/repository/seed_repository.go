package repository

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"luminax_client/internal/model"

	"github.com/minio/minio-go/v7"
	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var embeddedSeed []byte

// SeedRepository 启动时的目录与选课数据源，数据视为已校验
type SeedRepository interface {
	Load(ctx context.Context) (*model.Seed, error)
}

type EmbeddedSeedRepository struct{}

func NewEmbeddedSeedRepository() *EmbeddedSeedRepository {
	return &EmbeddedSeedRepository{}
}

func (r *EmbeddedSeedRepository) Load(ctx context.Context) (*model.Seed, error) {
	return DecodeSeed("catalog.yaml", bytes.NewReader(embeddedSeed))
}

// FileSeedRepository 本地 yaml/json 文件
type FileSeedRepository struct {
	Path string
}

func NewFileSeedRepository(path string) *FileSeedRepository {
	return &FileSeedRepository{Path: path}
}

func (r *FileSeedRepository) Load(ctx context.Context) (*model.Seed, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeSeed(r.Path, f)
}

// MinioSeedRepository 对象存储中的种子文件
type MinioSeedRepository struct {
	Client *minio.Client
	Bucket string
	Object string
}

func NewMinioSeedRepository(client *minio.Client, bucket, object string) *MinioSeedRepository {
	return &MinioSeedRepository{Client: client, Bucket: bucket, Object: object}
}

func (r *MinioSeedRepository) Load(ctx context.Context) (*model.Seed, error) {
	obj, err := r.Client.GetObject(ctx, r.Bucket, r.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return DecodeSeed(r.Object, obj)
}

// DecodeSeed 按扩展名选择 json 或 yaml 解码
func DecodeSeed(name string, rd io.Reader) (*model.Seed, error) {
	var seed model.Seed
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		if err := json.NewDecoder(rd).Decode(&seed); err != nil {
			return nil, fmt.Errorf("decode seed %s: %w", name, err)
		}
	default:
		if err := yaml.NewDecoder(rd).Decode(&seed); err != nil {
			return nil, fmt.Errorf("decode seed %s: %w", name, err)
		}
	}
	return &seed, nil
}
