package lesson

import (
	"testing"

	"classroom-hub/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 课程从文本切到视频后，旧的content必须被$unset清掉，
// 否则学生会同时看到旧文本和新视频
func TestUpdateDocClearsStaleTypeFields(t *testing.T) {
	content := "第一课讲义"
	l := &Lesson{
		ID:         primitive.NewObjectID(),
		TeacherID:  "teacher-1",
		Title:      "第一课",
		LessonType: consts.LessonTypeText,
		Content:    &content,
	}

	// 模拟更新为视频课
	youtube := "https://youtu.be/abc123"
	l.LessonType = consts.LessonTypeVideo
	l.Content = nil
	l.YoutubeURL = &youtube

	update := updateDoc(l)

	unset, ok := update[consts.Unset].(bson.M)
	require.True(t, ok, "清空类型字段时更新文档必须携带$unset")
	assert.Contains(t, unset, consts.Content)
	assert.Contains(t, unset, consts.FileURL)
	assert.Contains(t, unset, consts.FileName)
	assert.NotContains(t, unset, consts.YoutubeURL)

	raw, err := bson.Marshal(update[consts.Set])
	require.NoError(t, err)
	var setDoc bson.M
	require.NoError(t, bson.Unmarshal(raw, &setDoc))
	assert.NotContains(t, setDoc, consts.Content)
	assert.Equal(t, consts.LessonTypeVideo, setDoc["lesson_type"])
	assert.Equal(t, youtube, setDoc[consts.YoutubeURL])
}
