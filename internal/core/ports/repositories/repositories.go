package repositories

import "context"

// ImageStore uploads a quiz image and returns its public URL. Implemented by
// the S3 adapter; any object store with public reads satisfies it.
type ImageStore interface {
	UploadImage(ctx context.Context, fileName string, contentType string, data []byte) (string, error)
}

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	MemberRepo        MemberRepository
	QuizRepo          QuizRepository
	QuizCommentRepo   QuizCommentRepository
	DebateRepo        DebateRepository
	DebateCommentRepo DebateCommentRepository
}
