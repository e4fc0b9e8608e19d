// Package numeric provides the working-precision context shared by every
// stage of the resonance pipeline.
//
// 🚀 What is numeric?
//
//	A tiny, allocation-light layer over math/big that fixes one decimal
//	working precision per run and hands out big.Float values carrying it:
//	  • Digits — the floor rule: max(floor, bitLen·4 + 200)
//	  • Context — immutable precision holder, one per run
//	  • SqrtInt — the one-shot √N, round-to-nearest at context precision
//
// ✨ Key guarantees:
//   - Uniformity – every unbounded-magnitude decimal operation in a run
//     (square root, offset mapping, band comparison) uses the same context;
//     mixing precisions across stages is a correctness bug, not a knob.
//   - Determinism – big.Float arithmetic at a fixed mantissa width is
//     bit-reproducible across platforms.
//   - No silent correction – a negative square-root input is a fatal
//     arithmetic anomaly (ErrNegativeSqrt), never clamped.
//
// ⚙️ Usage:
//
//	ctx := numeric.NewContext(n.BitLen(), 50)
//	sqrtN, err := ctx.SqrtInt(n)
//	if err != nil {
//	  // handle ErrNegativeSqrt
//	}
//	root := numeric.RoundToInt(sqrtN) // nearest integer to √N
package numeric
