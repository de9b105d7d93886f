package stdlib

// hierarchy lists the public and protected members declared by platform classes that are commonly
// extended, with their superclass. Inherited members are reached by following the superclass.
var hierarchy = map[string]struct {
	parent  string
	members []string
}{
	"java.lang.Throwable": {parent: "java.lang.Object", members: []string{
		"addSuppressed", "fillInStackTrace", "getCause", "getLocalizedMessage", "getMessage", "getStackTrace",
		"getSuppressed", "initCause", "printStackTrace", "setStackTrace", "toString",
	}},
	"java.lang.Exception":                     {parent: "java.lang.Throwable"},
	"java.lang.Error":                         {parent: "java.lang.Throwable"},
	"java.lang.RuntimeException":              {parent: "java.lang.Exception"},
	"java.lang.IllegalArgumentException":      {parent: "java.lang.RuntimeException"},
	"java.lang.IllegalStateException":         {parent: "java.lang.RuntimeException"},
	"java.lang.UnsupportedOperationException": {parent: "java.lang.RuntimeException"},
	"java.lang.NullPointerException":          {parent: "java.lang.RuntimeException"},
	"java.lang.IndexOutOfBoundsException":     {parent: "java.lang.RuntimeException"},
	"java.lang.InterruptedException":          {parent: "java.lang.Exception"},
	"java.lang.ReflectiveOperationException":  {parent: "java.lang.Exception"},
	"java.lang.ClassNotFoundException":        {parent: "java.lang.ReflectiveOperationException", members: []string{"getCause", "getException"}},
	"java.lang.Number": {parent: "java.lang.Object", members: []string{
		"byteValue", "doubleValue", "floatValue", "intValue", "longValue", "shortValue",
	}},
	"java.lang.Enum": {parent: "java.lang.Object", members: []string{
		"compareTo", "describeConstable", "equals", "getDeclaringClass", "hashCode", "name", "ordinal",
		"toString", "valueOf",
	}},
	"java.lang.Record": {parent: "java.lang.Object", members: []string{"equals", "hashCode", "toString"}},
	"java.lang.Thread": {parent: "java.lang.Object", members: []string{
		"checkAccess", "currentThread", "getContextClassLoader", "getId", "getName", "getPriority",
		"getStackTrace", "getState", "getThreadGroup", "getUncaughtExceptionHandler", "holdsLock", "interrupt",
		"interrupted", "isAlive", "isDaemon", "isInterrupted", "isVirtual", "join", "ofPlatform", "ofVirtual",
		"onSpinWait", "run", "setContextClassLoader", "setDaemon", "setName", "setPriority",
		"setUncaughtExceptionHandler", "sleep", "start", "startVirtualThread", "threadId", "toString", "yield",
	}},
	"java.lang.ThreadLocal": {parent: "java.lang.Object", members: []string{
		"get", "initialValue", "remove", "set", "withInitial",
	}},
	"java.lang.InheritableThreadLocal": {parent: "java.lang.ThreadLocal", members: []string{"childValue"}},
	"java.lang.ClassLoader": {parent: "java.lang.Object", members: []string{
		"clearAssertionStatus", "defineClass", "definePackage", "findClass", "findLibrary", "findLoadedClass",
		"findResource", "findResources", "findSystemClass", "getClassLoadingLock", "getDefinedPackage",
		"getDefinedPackages", "getName", "getPackage", "getPackages", "getParent", "getPlatformClassLoader",
		"getResource", "getResourceAsStream", "getResources", "getSystemClassLoader", "getSystemResource",
		"getSystemResourceAsStream", "getUnnamedModule", "isRegisteredAsParallelCapable", "loadClass",
		"registerAsParallelCapable", "resolveClass", "setClassAssertionStatus", "setDefaultAssertionStatus",
		"setPackageAssertionStatus",
	}},

	"java.util.AbstractCollection": {parent: "java.lang.Object", members: []string{
		"add", "addAll", "clear", "contains", "containsAll", "isEmpty", "iterator", "remove", "removeAll",
		"retainAll", "size", "toArray", "toString",
	}},
	"java.util.AbstractList": {parent: "java.util.AbstractCollection", members: []string{
		"add", "addAll", "clear", "equals", "get", "hashCode", "indexOf", "iterator", "lastIndexOf",
		"listIterator", "modCount", "remove", "removeRange", "set", "subList",
	}},
	"java.util.AbstractSequentialList": {parent: "java.util.AbstractList", members: []string{
		"add", "addAll", "get", "iterator", "listIterator", "remove", "set",
	}},
	"java.util.ArrayList": {parent: "java.util.AbstractList", members: []string{
		"add", "addAll", "clear", "clone", "contains", "ensureCapacity", "equals", "forEach", "get",
		"hashCode", "indexOf", "isEmpty", "iterator", "lastIndexOf", "listIterator", "remove", "removeAll",
		"removeIf", "removeRange", "replaceAll", "retainAll", "set", "size", "sort", "spliterator", "subList",
		"toArray", "trimToSize",
	}},
	"java.util.LinkedList": {parent: "java.util.AbstractSequentialList", members: []string{
		"add", "addAll", "addFirst", "addLast", "clear", "clone", "contains", "descendingIterator", "element",
		"get", "getFirst", "getLast", "indexOf", "lastIndexOf", "listIterator", "offer", "offerFirst",
		"offerLast", "peek", "peekFirst", "peekLast", "poll", "pollFirst", "pollLast", "pop", "push", "remove",
		"removeFirst", "removeFirstOccurrence", "removeLast", "removeLastOccurrence", "reversed", "set", "size",
		"spliterator", "toArray",
	}},
	"java.util.Vector": {parent: "java.util.AbstractList", members: []string{
		"add", "addAll", "addElement", "capacity", "capacityIncrement", "clear", "clone", "contains",
		"containsAll", "copyInto", "elementAt", "elementCount", "elementData", "elements", "ensureCapacity",
		"equals", "firstElement", "forEach", "get", "hashCode", "indexOf", "insertElementAt", "isEmpty",
		"iterator", "lastElement", "lastIndexOf", "listIterator", "remove", "removeAll", "removeAllElements",
		"removeElement", "removeElementAt", "removeIf", "removeRange", "replaceAll", "retainAll", "set",
		"setElementAt", "setSize", "size", "sort", "spliterator", "subList", "toArray", "toString", "trimToSize",
	}},
	"java.util.Stack": {parent: "java.util.Vector", members: []string{"empty", "peek", "pop", "push", "search"}},
	"java.util.AbstractSet": {parent: "java.util.AbstractCollection", members: []string{
		"equals", "hashCode", "removeAll",
	}},
	"java.util.HashSet": {parent: "java.util.AbstractSet", members: []string{
		"add", "clear", "clone", "contains", "isEmpty", "iterator", "newHashSet", "remove", "size",
		"spliterator", "toArray",
	}},
	"java.util.LinkedHashSet": {parent: "java.util.HashSet", members: []string{
		"addFirst", "addLast", "getFirst", "getLast", "newLinkedHashSet", "removeFirst", "removeLast",
		"reversed", "spliterator",
	}},
	"java.util.TreeSet": {parent: "java.util.AbstractSet", members: []string{
		"add", "addAll", "ceiling", "clear", "clone", "comparator", "contains", "descendingIterator",
		"descendingSet", "first", "floor", "headSet", "higher", "isEmpty", "iterator", "last", "lower",
		"pollFirst", "pollLast", "remove", "size", "spliterator", "subSet", "tailSet",
	}},
	"java.util.AbstractQueue": {parent: "java.util.AbstractCollection", members: []string{
		"add", "addAll", "clear", "element", "remove",
	}},
	"java.util.PriorityQueue": {parent: "java.util.AbstractQueue", members: []string{
		"add", "clear", "comparator", "contains", "forEach", "iterator", "offer", "peek", "poll", "remove",
		"removeAll", "removeIf", "retainAll", "size", "spliterator", "toArray",
	}},
	"java.util.ArrayDeque": {parent: "java.util.AbstractCollection", members: []string{
		"add", "addAll", "addFirst", "addLast", "clear", "clone", "contains", "descendingIterator", "element",
		"forEach", "getFirst", "getLast", "isEmpty", "iterator", "offer", "offerFirst", "offerLast", "peek",
		"peekFirst", "peekLast", "poll", "pollFirst", "pollLast", "pop", "push", "remove", "removeAll",
		"removeFirst", "removeFirstOccurrence", "removeIf", "removeLast", "removeLastOccurrence", "retainAll",
		"size", "spliterator", "toArray",
	}},
	"java.util.AbstractMap": {parent: "java.lang.Object", members: []string{
		"clear", "clone", "containsKey", "containsValue", "entrySet", "equals", "get", "hashCode", "isEmpty",
		"keySet", "put", "putAll", "remove", "size", "toString", "values",
	}},
	"java.util.HashMap": {parent: "java.util.AbstractMap", members: []string{
		"clear", "clone", "compute", "computeIfAbsent", "computeIfPresent", "containsKey", "containsValue",
		"entrySet", "forEach", "get", "getOrDefault", "isEmpty", "keySet", "merge", "newHashMap", "put",
		"putAll", "putIfAbsent", "remove", "replace", "replaceAll", "size", "values",
	}},
	"java.util.LinkedHashMap": {parent: "java.util.HashMap", members: []string{
		"clear", "containsValue", "entrySet", "forEach", "get", "getOrDefault", "keySet", "newLinkedHashMap",
		"putFirst", "putLast", "removeEldestEntry", "replaceAll", "reversed", "sequencedEntrySet",
		"sequencedKeySet", "sequencedValues", "values",
	}},
	"java.util.TreeMap": {parent: "java.util.AbstractMap", members: []string{
		"ceilingEntry", "ceilingKey", "clear", "clone", "comparator", "compute", "computeIfAbsent",
		"computeIfPresent", "containsKey", "containsValue", "descendingKeySet", "descendingMap", "entrySet",
		"firstEntry", "firstKey", "floorEntry", "floorKey", "forEach", "get", "headMap", "higherEntry",
		"higherKey", "keySet", "lastEntry", "lastKey", "lowerEntry", "lowerKey", "merge", "navigableKeySet",
		"pollFirstEntry", "pollLastEntry", "put", "putAll", "putIfAbsent", "remove", "replace", "replaceAll",
		"size", "subMap", "tailMap", "values",
	}},
	"java.util.EventObject": {parent: "java.lang.Object", members: []string{"getSource", "source", "toString"}},
	"java.util.Observable": {parent: "java.lang.Object", members: []string{
		"addObserver", "clearChanged", "countObservers", "deleteObserver", "deleteObservers", "hasChanged",
		"notifyObservers", "setChanged",
	}},
	"java.util.TimerTask": {parent: "java.lang.Object", members: []string{"cancel", "run", "scheduledExecutionTime"}},

	"java.util.concurrent.ConcurrentHashMap": {parent: "java.util.AbstractMap", members: []string{
		"clear", "compute", "computeIfAbsent", "computeIfPresent", "contains", "containsKey", "containsValue",
		"elements", "entrySet", "equals", "forEach", "forEachEntry", "forEachKey", "forEachValue", "get",
		"getOrDefault", "hashCode", "isEmpty", "keySet", "keys", "mappingCount", "merge", "newKeySet", "put",
		"putAll", "putIfAbsent", "reduce", "reduceEntries", "reduceKeys", "reduceValues", "remove", "replace",
		"replaceAll", "search", "searchEntries", "searchKeys", "searchValues", "size", "toString", "values",
	}},
	"java.util.concurrent.AbstractExecutorService": {parent: "java.lang.Object", members: []string{
		"invokeAll", "invokeAny", "newTaskFor", "submit",
	}},
	"java.util.concurrent.ThreadPoolExecutor": {parent: "java.util.concurrent.AbstractExecutorService", members: []string{
		"afterExecute", "allowCoreThreadTimeOut", "allowsCoreThreadTimeOut", "awaitTermination", "beforeExecute",
		"execute", "getActiveCount", "getCompletedTaskCount", "getCorePoolSize", "getKeepAliveTime",
		"getLargestPoolSize", "getMaximumPoolSize", "getPoolSize", "getQueue", "getRejectedExecutionHandler",
		"getTaskCount", "getThreadFactory", "isShutdown", "isTerminated", "isTerminating",
		"prestartAllCoreThreads", "prestartCoreThread", "purge", "remove", "setCorePoolSize", "setKeepAliveTime",
		"setMaximumPoolSize", "setRejectedExecutionHandler", "setThreadFactory", "shutdown", "shutdownNow",
		"terminated", "toString",
	}},
	"java.util.concurrent.ScheduledThreadPoolExecutor": {parent: "java.util.concurrent.ThreadPoolExecutor", members: []string{
		"decorateTask", "getContinueExistingPeriodicTasksAfterShutdownPolicy",
		"getExecuteExistingDelayedTasksAfterShutdownPolicy", "getRemoveOnCancelPolicy", "schedule",
		"scheduleAtFixedRate", "scheduleWithFixedDelay", "setContinueExistingPeriodicTasksAfterShutdownPolicy",
		"setExecuteExistingDelayedTasksAfterShutdownPolicy", "setRemoveOnCancelPolicy",
	}},
	"java.util.concurrent.CompletableFuture": {parent: "java.lang.Object", members: []string{
		"allOf", "anyOf", "cancel", "complete", "completeExceptionally", "completeOnTimeout", "completedFuture",
		"exceptionally", "get", "getNow", "handle", "isCancelled", "isCompletedExceptionally", "isDone", "join",
		"obtrudeValue", "orTimeout", "runAsync", "supplyAsync", "thenAccept", "thenAcceptAsync", "thenApply",
		"thenApplyAsync", "thenCombine", "thenCompose", "thenRun", "thenRunAsync", "toCompletableFuture",
		"whenComplete",
	}},
	"java.util.concurrent.ForkJoinTask": {parent: "java.lang.Object", members: []string{
		"cancel", "complete", "completeExceptionally", "exec", "fork", "get", "getException", "getPool",
		"getQueuedTaskCount", "getRawResult", "getSurplusQueuedTaskCount", "helpQuiesce", "inForkJoinPool",
		"invoke", "invokeAll", "isCancelled", "isCompletedAbnormally", "isCompletedNormally", "isDone", "join",
		"quietlyComplete", "quietlyInvoke", "quietlyJoin", "reinitialize", "setRawResult", "tryUnfork",
	}},
	"java.util.concurrent.RecursiveTask": {parent: "java.util.concurrent.ForkJoinTask", members: []string{
		"compute", "exec", "getRawResult", "setRawResult",
	}},
	"java.util.concurrent.RecursiveAction": {parent: "java.util.concurrent.ForkJoinTask", members: []string{
		"compute", "exec", "getRawResult", "setRawResult",
	}},

	"java.io.IOException":           {parent: "java.lang.Exception"},
	"java.io.FileNotFoundException": {parent: "java.io.IOException"},
	"java.io.UncheckedIOException":  {parent: "java.lang.RuntimeException", members: []string{"getCause"}},
	"java.io.InputStream": {parent: "java.lang.Object", members: []string{
		"available", "close", "mark", "markSupported", "nullInputStream", "read", "readAllBytes", "readNBytes",
		"reset", "skip", "skipNBytes", "transferTo",
	}},
	"java.io.FilterInputStream": {parent: "java.io.InputStream", members: []string{
		"available", "close", "in", "mark", "markSupported", "read", "reset", "skip",
	}},
	"java.io.OutputStream": {parent: "java.lang.Object", members: []string{
		"close", "flush", "nullOutputStream", "write",
	}},
	"java.io.FilterOutputStream": {parent: "java.io.OutputStream", members: []string{
		"close", "flush", "out", "write",
	}},
	"java.io.PrintStream": {parent: "java.io.FilterOutputStream", members: []string{
		"append", "charset", "checkError", "clearError", "close", "flush", "format", "print", "printf",
		"println", "setError", "write", "writeBytes",
	}},
	"java.io.Reader": {parent: "java.lang.Object", members: []string{
		"close", "lock", "mark", "markSupported", "nullReader", "read", "ready", "reset", "skip", "transferTo",
	}},
	"java.io.Writer": {parent: "java.lang.Object", members: []string{
		"append", "close", "flush", "lock", "nullWriter", "write",
	}},
	"java.io.PrintWriter": {parent: "java.io.Writer", members: []string{
		"append", "checkError", "clearError", "close", "flush", "format", "out", "print", "printf", "println",
		"setError", "write",
	}},
}
