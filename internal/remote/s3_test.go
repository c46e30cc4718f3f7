package remote

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/AliSoftware/blogtool/internal/repository"
)

type fakeS3 struct {
	// objects maps key to the stored content hash.
	objects map[string]string
	puts    []string
}

func (f *fakeS3) HeadObject(_ context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	hash, ok := f.objects[*params.Key]
	if !ok {
		return nil, errors.New("NotFound")
	}
	return &s3.HeadObjectOutput{Metadata: map[string]string{hashMetadataKey: hash}}, nil
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if _, err := io.ReadAll(params.Body); err != nil {
		return nil, err
	}
	if f.objects == nil {
		f.objects = make(map[string]string)
	}
	f.objects[*params.Key] = params.Metadata[hashMetadataKey]
	f.puts = append(f.puts, *params.Key)
	return &s3.PutObjectOutput{}, nil
}

func TestPush(t *testing.T) {
	posts := repository.NewMemoryRepository("_posts")
	if err := posts.Write("2024-01-05-hello.md", []byte("# Hello")); err != nil {
		t.Fatal(err)
	}
	if err := posts.Write("2024-02-01-bye.md", []byte("# Bye")); err != nil {
		t.Fatal(err)
	}

	t.Run("Uploads everything the first time", func(t *testing.T) {
		client := &fakeS3{}
		syncer := NewS3SyncWithClient(client, "blog", "posts")

		uploaded, err := syncer.Push(context.Background(), posts)
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
		if uploaded != 2 {
			t.Errorf("Expected 2 uploads, got %d", uploaded)
		}
		if _, ok := client.objects["posts/2024-01-05-hello.md"]; !ok {
			t.Error("Expected prefixed object key")
		}
	})

	t.Run("Skips unchanged objects on the second push", func(t *testing.T) {
		client := &fakeS3{}
		syncer := NewS3SyncWithClient(client, "blog", "")

		if _, err := syncer.Push(context.Background(), posts); err != nil {
			t.Fatal(err)
		}
		uploaded, err := syncer.Push(context.Background(), posts)
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
		if uploaded != 0 {
			t.Errorf("Expected 0 uploads on an unchanged tree, got %d", uploaded)
		}
	})

	t.Run("Re-uploads changed content", func(t *testing.T) {
		client := &fakeS3{}
		syncer := NewS3SyncWithClient(client, "blog", "")

		if _, err := syncer.Push(context.Background(), posts); err != nil {
			t.Fatal(err)
		}

		// Simulate a stale remote copy.
		client.objects["2024-01-05-hello.md"] = "stale-hash"

		uploaded, err := syncer.Push(context.Background(), posts)
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
		if uploaded != 1 {
			t.Errorf("Expected exactly the stale object to be re-uploaded, got %d", uploaded)
		}
	})
}
