package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"amharic.dev/analyzer/amharic"
	"amharic.dev/analyzer/api/core"
	analysispb "amharic.dev/analyzer/proto/analysis"
)

const (
	// room for the message envelopes and the fixed reply fields
	messageOverhead = 64 << 10
	// A token of L bytes takes at least L+1 bytes of text and at most 6L+68
	// bytes of reply: three token lists, one frequency row and the
	// remove/index lists.
	replyFactor = 40
)

// CallLimits returns the send and receive limits for texts of up to
// maxTextBytes. Zero or less keeps the gRPC defaults.
func CallLimits(maxTextBytes int) []grpc.CallOption {
	if maxTextBytes <= 0 {
		return nil
	}
	return []grpc.CallOption{
		grpc.MaxCallSendMsgSize(maxTextBytes + messageOverhead),
		grpc.MaxCallRecvMsgSize(maxReplyBytes(maxTextBytes)),
	}
}

func maxReplyBytes(maxTextBytes int) int {
	if maxTextBytes > (math.MaxInt32-messageOverhead)/replyFactor {
		return math.MaxInt32
	}
	return replyFactor*maxTextBytes + messageOverhead
}

type Client struct {
	log    *slog.Logger
	client analysispb.AnalysisClient
	health healthpb.HealthClient
	conn   *grpc.ClientConn
}

func NewClient(address string, maxTextBytes int, log *slog.Logger) (*Client, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff: backoff.Config{
				BaseDelay:  1 * time.Second,
				Multiplier: 1.6,
				MaxDelay:   10 * time.Second,
			},
			MinConnectTimeout: 10 * time.Second,
		}),
	}
	if limits := CallLimits(maxTextBytes); limits != nil {
		opts = append(opts, grpc.WithDefaultCallOptions(limits...))
	}

	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, err
	}
	conn.Connect()

	return newClient(log, conn), nil
}

func newClient(log *slog.Logger, conn *grpc.ClientConn) *Client {
	return &Client{
		log:    log,
		client: analysispb.NewAnalysisClient(conn),
		health: healthpb.NewHealthClient(conn),
		conn:   conn,
	}
}

func (c *Client) Analyze(ctx context.Context, text string) (amharic.Result, error) {
	resp, err := c.client.Analyze(ctx, &analysispb.AnalyzeRequest{Text: text}, grpc.WaitForReady(true))
	if err != nil {
		switch status.Code(err) {
		case codes.InvalidArgument:
			return amharic.Result{}, fmt.Errorf("%w: %s", core.ErrBadArguments, status.Convert(err).Message())
		case codes.Unavailable:
			return amharic.Result{}, fmt.Errorf("%w: %s", core.ErrUnavailable, status.Convert(err).Message())
		case codes.ResourceExhausted:
			c.log.Error("analysis message exceeds limit", "error", err)
			return amharic.Result{}, fmt.Errorf("analysis message exceeds limit: %w", err)
		}
		return amharic.Result{}, err
	}
	return fromProto(resp.GetResult()), nil
}

func fromProto(pb *analysispb.AnalysisResult) amharic.Result {
	res := amharic.Result{
		Language:          amharic.Language(pb.GetDetectedLanguage()),
		OriginalTokens:    nonNil(pb.GetOriginalTokens()),
		FilteredTokens:    nonNil(pb.GetFilteredTokens()),
		StemmedTokens:     nonNil(pb.GetStemmedTokens()),
		WordsToRemove:     nonNil(pb.GetWordsToRemove()),
		IndexTerms:        nonNil(pb.GetIndexTerms()),
		WordFrequencies:   make(map[string]int, len(pb.GetFrequencyTable())),
		FrequencyTable:    make([]amharic.FrequencyEntry, 0, len(pb.GetFrequencyTable())),
		ZipfCorrelation:   amharic.Correlation{Value: pb.GetZipfCorrelation(), Valid: pb.GetZipfDefined()},
		TotalWords:        int(pb.GetTotalWords()),
		UniqueWords:       int(pb.GetUniqueWords()),
		AverageWordLength: pb.GetAverageWordLength(),
	}
	for _, e := range pb.GetFrequencyTable() {
		res.FrequencyTable = append(res.FrequencyTable, amharic.FrequencyEntry{
			Word:          e.GetWord(),
			Frequency:     int(e.GetFrequency()),
			Rank:          int(e.GetRank()),
			RankFrequency: int(e.GetRankFreqProduct()),
		})
		res.WordFrequencies[e.GetWord()] = int(e.GetFrequency())
	}
	return res
}

// empty repeated fields decode as nil; results always carry lists
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: analysispb.Analysis_ServiceDesc.ServiceName})
	if err != nil {
		return err
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: status %s", core.ErrUnavailable, resp.GetStatus())
	}
	return nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
