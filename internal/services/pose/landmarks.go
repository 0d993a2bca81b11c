package pose

// Body keypoint indices following the OpenPose COCO convention.
const (
	Nose          = 0
	Neck          = 1
	RightShoulder = 2
	RightElbow    = 3
	RightWrist    = 4
	LeftShoulder  = 5
	LeftElbow     = 6
	LeftWrist     = 7
	RightHip      = 8
	RightKnee     = 9
	RightAnkle    = 10
	LeftHip       = 11
	LeftKnee      = 12
	LeftAnkle     = 13
	RightEye      = 14
	LeftEye       = 15
	RightEar      = 16
	LeftEar       = 17
	NumKeypoints  = 18
)

// Skeleton pairs keypoint indices to draw limb lines between.
var Skeleton = [][2]int{
	{Neck, RightShoulder}, {Neck, LeftShoulder},
	{RightShoulder, RightElbow}, {RightElbow, RightWrist},
	{LeftShoulder, LeftElbow}, {LeftElbow, LeftWrist},
	{Neck, RightHip}, {RightHip, RightKnee}, {RightKnee, RightAnkle},
	{Neck, LeftHip}, {LeftHip, LeftKnee}, {LeftKnee, LeftAnkle},
	{Neck, Nose}, {Nose, RightEye}, {RightEye, RightEar},
	{Nose, LeftEye}, {LeftEye, LeftEar},
}

// Landmark is one body point in normalized [0,1] image coordinates.
type Landmark struct {
	X          float64
	Y          float64
	Confidence float64
}

// Body holds one detected person's landmarks for a single frame.
type Body struct {
	Landmarks [NumKeypoints]Landmark
}

// Visible reports whether the landmark at idx cleared the confidence gate.
func (b *Body) Visible(idx int, minConfidence float64) bool {
	return b.Landmarks[idx].Confidence >= minConfidence
}
