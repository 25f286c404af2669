package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBitmap(t *testing.T) {
	bm := NewBitmap(4, 3)
	require.Equal(t, 4, bm.Width)
	require.Equal(t, 3, bm.Height)
	require.Len(t, bm.Pix, 4*3*3)
}

func TestBitmapAt(t *testing.T) {
	bm := NewBitmap(2, 2)
	i := (1*bm.Width + 1) * 3
	bm.Pix[i] = 200
	bm.Pix[i+1] = 100
	bm.Pix[i+2] = 50

	r, g, b := bm.At(1, 1)
	require.Equal(t, uint8(200), r)
	require.Equal(t, uint8(100), g)
	require.Equal(t, uint8(50), b)
}

func TestPredictionJSON(t *testing.T) {
	p := Prediction{
		ClassName:  "cat",
		Confidence: 0.87,
		BBox:       [4]float64{100, 150, 40, 60},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"class_name":"cat","confidence":0.87,"bbox":[100,150,40,60]}`, string(data))
}
