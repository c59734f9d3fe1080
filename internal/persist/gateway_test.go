package persist

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MarvinJWendt/testza"
	"github.com/aschey/vortex/test"
	"go.uber.org/mock/gomock"
)

func sampleDocument() Document {
	return Document{
		Running:                   true,
		ElapsedBeforeMs:           7000,
		SegmentStartedAtWallClock: 1700000010000,
		Laps: []LapRecord{
			{ElapsedMs: 5000, FormattedText: "00:00:05.000", RecordedAtWallClock: 1700000005000},
			{ElapsedMs: 2000, FormattedText: "00:00:02.000", RecordedAtWallClock: 1700000002000},
		},
	}
}

func TestLoadMissingKeyReturnsDefault(t *testing.T) {
	gateway := NewGateway(NewMemoryKV(), "", nil)

	doc, result := gateway.Load(context.Background())

	testza.AssertEqual(t, DefaultDocument(), doc)
	testza.AssertEqual(t, StatusDefaulted, result.Status)
	testza.AssertTrue(t, errors.Is(result.Err, ErrNotFound))
	testza.AssertEqual(t, DefaultKey, gateway.Key())
}

func TestLoadCorruptContentReturnsDefault(t *testing.T) {
	testCases := []string{
		"{not json",
		`{"running": "yes"}`,
		`{"running": false, "elapsedBeforeMs": -5, "laps": []}`,
		`{"running": false, "elapsedBeforeMs": 0, "laps": [{"elapsedMs": -1}]}`,
		`{"running": false, "elapsedBeforeMs": 12.5, "laps": []}`,
		`[]`,
	}

	for _, raw := range testCases {
		kv := NewMemoryKV()
		testza.AssertNoError(t, kv.Set(context.Background(), DefaultKey, raw))
		gateway := NewGateway(kv, DefaultKey, nil)

		doc, result := gateway.Load(context.Background())

		testza.AssertEqual(t, DefaultDocument(), doc, raw)
		testza.AssertEqual(t, StatusDefaulted, result.Status, raw)
		testza.AssertFalse(t, result.OK(), raw)
	}
}

func TestLoadOutOfRangeReturnsDefault(t *testing.T) {
	testCases := []string{
		`{"running": false, "elapsedBeforeMs": 9300000000000, "laps": []}`,
		`{"running": false, "elapsedBeforeMs": 0, "laps": [{"elapsedMs": 18446744073709, "formattedText": "x", "recordedAtWallClock": 0}]}`,
		`{"running": true, "elapsedBeforeMs": 0, "segmentStartedAtWallClock": 9300000000000, "laps": []}`,
	}

	for _, raw := range testCases {
		kv := NewMemoryKV()
		testza.AssertNoError(t, kv.Set(context.Background(), DefaultKey, raw))
		gateway := NewGateway(kv, DefaultKey, nil)

		doc, result := gateway.Load(context.Background())

		testza.AssertEqual(t, DefaultDocument(), doc, raw)
		testza.AssertEqual(t, StatusDefaulted, result.Status, raw)
		testza.AssertTrue(t, errors.Is(result.Err, ErrMalformed), raw)
	}
}

func TestLoadLargestElapsedIsAccepted(t *testing.T) {
	kv := NewMemoryKV()
	raw := fmt.Sprintf(`{"running": false, "elapsedBeforeMs": %d, "laps": []}`, MaxMillis)
	testza.AssertNoError(t, kv.Set(context.Background(), DefaultKey, raw))

	doc, result := NewGateway(kv, DefaultKey, nil).Load(context.Background())

	testza.AssertEqual(t, StatusOK, result.Status)
	testza.AssertEqual(t, MaxMillis, doc.ElapsedBeforeMs)
}

func TestLoadUnavailableStoreReturnsDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kv := test.NewMockKV(ctrl)
	kv.EXPECT().Get(gomock.Any(), DefaultKey).Return("", false, ErrUnavailable)

	doc, result := NewGateway(kv, DefaultKey, nil).Load(context.Background())

	testza.AssertEqual(t, DefaultDocument(), doc)
	testza.AssertEqual(t, StatusDefaulted, result.Status)
	testza.AssertTrue(t, errors.Is(result.Err, ErrUnavailable))
}

func TestLoadWithoutStore(t *testing.T) {
	doc, result := NewGateway(nil, DefaultKey, nil).Load(context.Background())

	testza.AssertEqual(t, DefaultDocument(), doc)
	testza.AssertTrue(t, errors.Is(result.Err, ErrUnavailable))
}

func TestSaveFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kv := test.NewMockKV(ctrl)
	kv.EXPECT().Set(gomock.Any(), DefaultKey, gomock.Any()).Return(ErrQuotaExceeded)

	result := NewGateway(kv, DefaultKey, nil).Save(context.Background(), sampleDocument())

	testza.AssertEqual(t, StatusFailed, result.Status)
	testza.AssertTrue(t, errors.Is(result.Err, ErrQuotaExceeded))
	testza.AssertFalse(t, result.OK())
}

func TestSaveWritesWholeDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	kv := test.NewMockKV(ctrl)
	matcher := test.NewMatcher(func(arg any) bool {
		return arg.(string) == `{"running":false,"elapsedBeforeMs":1500,"laps":[]}`
	})
	kv.EXPECT().Set(gomock.Any(), "custom", matcher).Return(nil)

	result := NewGateway(kv, "custom", nil).Save(context.Background(), Document{ElapsedBeforeMs: 1500})

	testza.AssertEqual(t, StatusOK, result.Status)
	testza.AssertNoError(t, result.Err)
}

func TestSaveLoadIsFixedPoint(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	gateway := NewGateway(kv, DefaultKey, nil)

	testza.AssertTrue(t, gateway.Save(ctx, sampleDocument()).OK())
	first, _, _ := kv.Get(ctx, DefaultKey)

	loaded, result := gateway.Load(ctx)
	testza.AssertEqual(t, StatusOK, result.Status)
	testza.AssertEqual(t, sampleDocument(), loaded)

	testza.AssertTrue(t, gateway.Save(ctx, loaded).OK())
	second, _, _ := kv.Get(ctx, DefaultKey)
	testza.AssertEqual(t, first, second)
}

func TestDefaultDocumentIsFixedPoint(t *testing.T) {
	ctx := context.Background()
	gateway := NewGateway(NewMemoryKV(), DefaultKey, nil)

	doc, _ := gateway.Load(ctx)
	testza.AssertTrue(t, gateway.Save(ctx, doc).OK())
	reloaded, result := gateway.Load(ctx)

	testza.AssertEqual(t, StatusOK, result.Status)
	testza.AssertEqual(t, doc, reloaded)
}

func TestStoppedDocumentDropsSegmentStart(t *testing.T) {
	ctx := context.Background()
	gateway := NewGateway(NewMemoryKV(), DefaultKey, nil)

	doc := sampleDocument()
	doc.Running = false
	gateway.Save(ctx, doc)
	loaded, _ := gateway.Load(ctx)

	testza.AssertEqual(t, int64(0), loaded.SegmentStartedAtWallClock)
}
