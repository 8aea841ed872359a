package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"amharic.dev/analyzer/amharic"
	analysispb "amharic.dev/analyzer/proto/analysis"
)

type TextAnalyzer interface {
	Analyze(text string) amharic.Result
}

type Server struct {
	analysispb.UnimplementedAnalysisServer
	log          *slog.Logger
	analyzer     TextAnalyzer
	maxTextBytes int
}

// NewServer returns the Analysis service. Texts longer than maxTextBytes are
// rejected; zero or less disables the limit.
func NewServer(log *slog.Logger, analyzer TextAnalyzer, maxTextBytes int) *Server {
	return &Server{
		log:          log,
		analyzer:     analyzer,
		maxTextBytes: maxTextBytes,
	}
}

// An oversized text is the caller's fault and is reported as InvalidArgument,
// so clients can tell it apart from their own message size limits, which
// surface as ResourceExhausted.
func (s *Server) Analyze(ctx context.Context, req *analysispb.AnalyzeRequest) (*analysispb.AnalyzeReply, error) {
	text := req.GetText()
	if s.maxTextBytes > 0 && len(text) > s.maxTextBytes {
		s.log.Error("text too large", "size", len(text), "limit", s.maxTextBytes)
		return nil, status.Errorf(codes.InvalidArgument, "text is %d bytes, limit is %d", len(text), s.maxTextBytes)
	}
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}

	res := s.analyzer.Analyze(text)
	s.log.Debug("analyzed text",
		"size", len(text),
		"language", res.Language,
		"tokens", res.TotalWords,
		"unique", res.UniqueWords,
	)
	return &analysispb.AnalyzeReply{Result: toProto(res)}, nil
}

func toProto(res amharic.Result) *analysispb.AnalysisResult {
	table := make([]*analysispb.FrequencyEntry, 0, len(res.FrequencyTable))
	for _, e := range res.FrequencyTable {
		table = append(table, &analysispb.FrequencyEntry{
			Word:            e.Word,
			Frequency:       int64(e.Frequency),
			Rank:            int64(e.Rank),
			RankFreqProduct: int64(e.RankFrequency),
		})
	}
	return &analysispb.AnalysisResult{
		DetectedLanguage:  string(res.Language),
		OriginalTokens:    res.OriginalTokens,
		FilteredTokens:    res.FilteredTokens,
		StemmedTokens:     res.StemmedTokens,
		WordsToRemove:     res.WordsToRemove,
		IndexTerms:        res.IndexTerms,
		FrequencyTable:    table,
		ZipfCorrelation:   res.ZipfCorrelation.Value,
		ZipfDefined:       res.ZipfCorrelation.Valid,
		TotalWords:        int64(res.TotalWords),
		UniqueWords:       int64(res.UniqueWords),
		AverageWordLength: res.AverageWordLength,
	}
}
