package grpc

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"amharic.dev/analyzer/amharic"
	analysispb "amharic.dev/analyzer/proto/analysis"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockAnalyzer struct {
	analyzeFn func(text string) amharic.Result
	calls     int
}

func (m *mockAnalyzer) Analyze(text string) amharic.Result {
	m.calls++
	if m.analyzeFn == nil {
		return amharic.Result{}
	}
	return m.analyzeFn(text)
}

func TestServer_Analyze_Success(t *testing.T) {
	ma := &mockAnalyzer{
		analyzeFn: func(text string) amharic.Result {
			return amharic.Result{Language: amharic.LanguageAmharic, TotalWords: 2}
		},
	}
	s := NewServer(newTestLogger(), ma, 100)

	resp, err := s.Analyze(context.Background(), &analysispb.AnalyzeRequest{Text: "ሰላም ለአለም"})
	require.NoError(t, err)
	assert.Equal(t, "am", resp.GetResult().GetDetectedLanguage())
	assert.Equal(t, int64(2), resp.GetResult().GetTotalWords())
	assert.Equal(t, 1, ma.calls)
}

func TestServer_Analyze_TooLarge(t *testing.T) {
	ma := &mockAnalyzer{}
	s := NewServer(newTestLogger(), ma, 4)

	resp, err := s.Analyze(context.Background(), &analysispb.AnalyzeRequest{Text: "ሰላም"})
	assert.Nil(t, resp)
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Zero(t, ma.calls)
}

func TestServer_Analyze_NoLimit(t *testing.T) {
	s := NewServer(newTestLogger(), &mockAnalyzer{}, 0)

	_, err := s.Analyze(context.Background(), &analysispb.AnalyzeRequest{Text: strings.Repeat("ሀ ", 1000)})
	require.NoError(t, err)
}

func TestServer_Analyze_Cancelled(t *testing.T) {
	ma := &mockAnalyzer{}
	s := NewServer(newTestLogger(), ma, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Analyze(ctx, &analysispb.AnalyzeRequest{Text: "ሰላም"})
	require.Error(t, err)
	assert.Equal(t, codes.Canceled, status.Code(err))
	assert.Zero(t, ma.calls)
}

func newBufClient(t *testing.T, srv analysispb.AnalysisServer) analysispb.AnalysisClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	analysispb.RegisterAnalysisServer(s, srv)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return analysispb.NewAnalysisClient(conn)
}

func TestServer_Analyze_OverTheWire(t *testing.T) {
	analyzer, err := amharic.New(amharic.DefaultOptions())
	require.NoError(t, err)
	client := newBufClient(t, NewServer(newTestLogger(), analyzer, 1<<16))

	resp, err := client.Analyze(context.Background(), &analysispb.AnalyzeRequest{
		Text: "ሰነድ ሰነድ ቃል። ሰነድ ቃላት፣ ቃል",
	})
	require.NoError(t, err)

	res := resp.GetResult()
	assert.Equal(t, "am", res.GetDetectedLanguage())
	assert.Equal(t, int64(6), res.GetTotalWords())
	assert.Equal(t, int64(3), res.GetUniqueWords())
	require.NotEmpty(t, res.GetFrequencyTable())
	assert.Equal(t, "ሰነድ", res.GetFrequencyTable()[0].GetWord())
	assert.Equal(t, int64(3), res.GetFrequencyTable()[0].GetFrequency())
	assert.Equal(t, int64(1), res.GetFrequencyTable()[0].GetRank())
	assert.True(t, res.GetZipfDefined())
}

func TestServer_Analyze_OverTheWire_UndefinedZipf(t *testing.T) {
	analyzer, err := amharic.New(amharic.DefaultOptions())
	require.NoError(t, err)
	client := newBufClient(t, NewServer(newTestLogger(), analyzer, 0))

	resp, err := client.Analyze(context.Background(), &analysispb.AnalyzeRequest{Text: ""})
	require.NoError(t, err)
	assert.False(t, resp.GetResult().GetZipfDefined())
	assert.Zero(t, resp.GetResult().GetTotalWords())
}

func TestServer_Analyze_OverTheWire_TooLarge(t *testing.T) {
	client := newBufClient(t, NewServer(newTestLogger(), &mockAnalyzer{}, 3))

	_, err := client.Analyze(context.Background(), &analysispb.AnalyzeRequest{Text: "ሰላም ለአለም"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestToProto(t *testing.T) {
	res := amharic.Result{
		Language:       amharic.LanguageAmharic,
		OriginalTokens: []string{"ሰላም", "ሰላም"},
		FrequencyTable: []amharic.FrequencyEntry{
			{Word: "ሰላም", Frequency: 2, Rank: 1, RankFrequency: 2},
		},
		WordFrequencies:   map[string]int{"ሰላም": 2},
		ZipfCorrelation:   amharic.Correlation{Value: -0.5, Valid: true},
		TotalWords:        2,
		UniqueWords:       1,
		AverageWordLength: 3,
	}

	pb := toProto(res)
	assert.Equal(t, "am", pb.GetDetectedLanguage())
	assert.Equal(t, res.OriginalTokens, pb.GetOriginalTokens())
	require.Len(t, pb.GetFrequencyTable(), 1)
	entry := pb.GetFrequencyTable()[0]
	assert.Equal(t, "ሰላም", entry.GetWord())
	assert.Equal(t, int64(2), entry.GetFrequency())
	assert.Equal(t, int64(1), entry.GetRank())
	assert.Equal(t, int64(2), entry.GetRankFreqProduct())
	assert.Equal(t, -0.5, pb.GetZipfCorrelation())
	assert.True(t, pb.GetZipfDefined())
	assert.Equal(t, int64(2), pb.GetTotalWords())
	assert.Equal(t, int64(1), pb.GetUniqueWords())
	assert.Equal(t, 3.0, pb.GetAverageWordLength())
}

func TestAnalysisDescriptorRegistered(t *testing.T) {
	name := protoreflect.FullName(analysispb.Analysis_ServiceDesc.ServiceName)
	d, err := protoregistry.GlobalFiles.FindDescriptorByName(name)
	require.NoError(t, err)

	sd, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	m := sd.Methods().ByName("Analyze")
	require.NotNil(t, m)
	assert.Equal(t, protoreflect.FullName("amharic.analysis.AnalyzeRequest"), m.Input().FullName())
	assert.Equal(t, protoreflect.FullName("amharic.analysis.AnalyzeReply"), m.Output().FullName())
	assert.Equal(t, analysispb.Analysis_ServiceDesc.Metadata, sd.ParentFile().Path())
}
